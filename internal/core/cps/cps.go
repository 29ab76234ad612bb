// Copyright 2026 The lambdac Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cps implements the second stage of the core pipeline: it
// flattens every n-ary application into a sequence of binary
// Continuations plus a result Literal, the shape the closure and
// codegen stages operate on.
package cps

import "lambdac.org/go/internal/core/identset"

// Program is the CPS-converted tree: one chain per top-level
// assignment.
type Program struct {
	Assignments []*Assignment
}

// Assignment holds the flattened continuation chain for one top-level
// binding's right-hand side.
type Assignment struct {
	Target        string
	Continuations []*Continuation
	Result        Literal
}

// Lambda is a fully CPS-converted lambda value: its own chain, plus
// the ID and capture set carried over unchanged from capture
// analysis.
type Lambda struct {
	Argument string
	ID       int
	Captures *identset.Set

	Continuations []*Continuation
	Result        Literal
}

// Continuation is one binary application `function argument`, numbered
// in creation order within its enclosing chain. It produces the value
// Anonymous(ID).
type Continuation struct {
	ID       int
	Function Literal
	Argument Literal
}

// Literal is the operand of a Continuation, or a chain's result: a
// reference to a prior continuation's result, a named identifier, or a
// lambda value constructed in place.
type Literal interface{ literalNode() }

// AnonymousLiteral refers to the result produced by continuation ID
// earlier in the same chain.
type AnonymousLiteral struct{ ID int }

func (*AnonymousLiteral) literalNode() {}

// IdentifierLiteral refers to a named identifier, local or global.
type IdentifierLiteral struct{ Name string }

func (*IdentifierLiteral) literalNode() {}

// LambdaLiteral is a lambda value constructed at this point in the
// chain.
type LambdaLiteral struct{ Lambda *Lambda }

func (*LambdaLiteral) literalNode() {}

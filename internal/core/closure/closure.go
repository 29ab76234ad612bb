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

// Package closure implements the third stage of the core pipeline:
// for every continuation, it computes the named and anonymous capture
// sets the CPS backend needs to build closure-free frames.
package closure

import (
	"lambdac.org/go/internal/core/identset"
	"lambdac.org/go/internal/core/idset"
)

// Program is the continuation-capture-decorated tree.
type Program struct {
	Assignments []*Assignment
}

type Assignment struct {
	Target        string
	Continuations []*Continuation
	Result        Literal
}

type Lambda struct {
	Argument string
	ID       int
	Captures *identset.Set

	Continuations []*Continuation
	Result        Literal
}

// Continuation is a cps.Continuation decorated with its capture sets:
// Captures, named identifiers from enclosing scope this step needs,
// and AnonymousCaptures, prior continuations' results this step
// needs.
type Continuation struct {
	ID       int
	Function Literal
	Argument Literal

	Captures          *identset.Set
	AnonymousCaptures *idset.Set
}

type Literal interface{ literalNode() }

type AnonymousLiteral struct{ ID int }

func (*AnonymousLiteral) literalNode() {}

type IdentifierLiteral struct{ Name string }

func (*IdentifierLiteral) literalNode() {}

type LambdaLiteral struct{ Lambda *Lambda }

func (*LambdaLiteral) literalNode() {}

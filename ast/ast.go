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

// Package ast defines the surface syntax tree produced by the parser.
//
// A Program is an ordered list of Assignments. Every stage of the
// compiler's core (see internal/core) attaches its own decoration to a
// tree shaped exactly like this one rather than mutating it in place;
// this package itself carries no analysis data.
package ast

// Program is an ordered sequence of top-level assignments.
type Program struct {
	Assignments []*Assignment
}

// Assignment binds Target to the value of Value.
type Assignment struct {
	Target string
	Value  *Application
}

// Application is a non-empty left-associative sequence of expressions:
// Head applied to the expressions of Tail, in order. A nil Tail means
// Head is the application's only expression.
type Application struct {
	Head Expression
	Tail *Application
}

// Expressions flattens the Head/Tail chain into a slice, in source order.
func (a *Application) Expressions() []Expression {
	if a == nil {
		return nil
	}
	exprs := make([]Expression, 0, 1)
	for cur := a; cur != nil; cur = cur.Tail {
		exprs = append(exprs, cur.Head)
	}
	return exprs
}

// Expression is one of Identifier, Parenthesis, or Lambda.
type Expression interface {
	exprNode()
}

// Identifier is a bare reference to a name.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}

// Parenthesis groups a nested application.
type Parenthesis struct {
	Application *Application
}

func (*Parenthesis) exprNode() {}

// Lambda is a one-argument anonymous function. Body extends as far right
// as grammar allows: it is not limited to a single expression, matching
// the greedy right-associativity of `arg -> body` in the source grammar.
type Lambda struct {
	Argument string
	Body     *Application
}

func (*Lambda) exprNode() {}

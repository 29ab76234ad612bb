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

package cps

import "lambdac.org/go/internal/core/capture"

// Convert runs CPS conversion over a capture-analyzed tree.
func Convert(prog *capture.Program) *Program {
	out := &Program{}
	for _, ass := range prog.Assignments {
		ctx := &context{}
		result := ctx.convertApplication(ass.Value)
		out.Assignments = append(out.Assignments, &Assignment{
			Target:        ass.Target,
			Continuations: ctx.continuations,
			Result:        result,
		})
	}
	return out
}

// context accumulates the continuation chain for one enclosing scope
// (an assignment's right-hand side, or a lambda body). A parenthesized
// sub-application converts within the *same* context as its enclosing
// application, so its continuations land in the outer sequence rather
// than a chain of their own.
type context struct {
	nextID        int
	continuations []*Continuation
}

// convertApplication implements the left-to-right flattening
// algorithm: the head expression seeds the accumulator, and each
// subsequent expression emits one new continuation applying the
// accumulator so far to that expression's literal.
func (ctx *context) convertApplication(app *capture.Application) Literal {
	exprs := app.Expressions()

	acc := ctx.convertExpression(exprs[0])
	for _, expr := range exprs[1:] {
		arg := ctx.convertExpression(expr)
		id := ctx.nextID
		ctx.nextID++
		ctx.continuations = append(ctx.continuations, &Continuation{
			ID:       id,
			Function: acc,
			Argument: arg,
		})
		acc = &AnonymousLiteral{ID: id}
	}

	return acc
}

func (ctx *context) convertExpression(expr capture.Expression) Literal {
	switch e := expr.(type) {
	case *capture.Identifier:
		return &IdentifierLiteral{Name: e.Name}
	case *capture.Parenthesis:
		// Inlined into the current chain: same ctx, so its internal
		// continuations are appended to ours and numbered in sequence.
		return ctx.convertApplication(e.Application)
	case *capture.Lambda:
		sub := &context{}
		result := sub.convertApplication(e.Body)
		return &LambdaLiteral{Lambda: &Lambda{
			Argument:      e.Argument,
			ID:            e.ID,
			Captures:      e.Captures,
			Continuations: sub.continuations,
			Result:        result,
		}}
	default:
		panic("cps: unknown capture.Expression variant")
	}
}

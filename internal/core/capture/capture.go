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

// Package capture implements the first stage of the core pipeline: it
// assigns every lambda a per-assignment-scoped ID and computes its
// capture set, the subset of enclosing lambdas' arguments it
// references transitively.
package capture

import (
	"lambdac.org/go/ast"
	"lambdac.org/go/errors"
	"lambdac.org/go/internal/core/identset"
)

// Program is ast.Program with every Lambda decorated with an ID and a
// capture set. The structural shape matches ast.Program exactly; only
// Lambda gains a payload.
type Program struct {
	Assignments []*Assignment
}

type Assignment struct {
	Target string
	Value  *Application
}

type Application struct {
	Head Expression
	Tail *Application
}

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

type Expression interface{ exprNode() }

type Identifier struct{ Name string }

func (*Identifier) exprNode() {}

type Parenthesis struct{ Application *Application }

func (*Parenthesis) exprNode() {}

// Lambda is ast.Lambda plus the capture-analysis payload: a stable ID,
// numbered 0, 1, 2, ... in traversal order within the enclosing
// assignment, and Captures, the ordered set of outer-scope identifiers
// referenced in Body.
type Lambda struct {
	Argument string
	Body     *Application
	ID       int
	Captures *identset.Set
}

func (*Lambda) exprNode() {}

// context carries the recursive-walk state: a per-assignment id
// counter, the running diagnostics list, and the
// globals/locals/referenced bookkeeping used to compute capture sets
// and to flag undefined names.
type context struct {
	currentAssignment string
	nextID            int

	globals    *identset.Set
	locals     *identset.Set
	referenced *identset.Set

	diags errors.List
}

func (c *context) contains(name string) bool {
	return c.locals.Contains(name) || c.globals.Contains(name)
}

// Analyze runs capture analysis over prog, returning the decorated
// tree and the diagnostics collected along the way. Diagnostics never
// halt the pipeline, so Program is always returned even when
// diagnostics is non-empty.
func Analyze(prog *ast.Program) (*Program, errors.List) {
	ctx := &context{
		globals:    identset.New(),
		locals:     identset.New(),
		referenced: identset.New(),
	}

	out := &Program{}
	for _, ass := range prog.Assignments {
		decorated := transformAssignment(ass, ctx)
		ctx.globals.Add(decorated.Target)
		out.Assignments = append(out.Assignments, decorated)
	}

	return out, ctx.diags
}

func transformAssignment(ass *ast.Assignment, ctx *context) *Assignment {
	if ctx.contains(ass.Target) {
		ctx.diags.Errorf("redefinition of '%s'", ass.Target)
	}

	ctx.currentAssignment = ass.Target
	ctx.nextID = 0

	return &Assignment{
		Target: ass.Target,
		Value:  transformApplication(ass.Value, ctx),
	}
}

func transformApplication(app *ast.Application, ctx *context) *Application {
	if app == nil {
		return nil
	}
	return &Application{
		Head: transformExpression(app.Head, ctx),
		Tail: transformApplication(app.Tail, ctx),
	}
}

func transformExpression(expr ast.Expression, ctx *context) Expression {
	switch e := expr.(type) {
	case *ast.Identifier:
		ctx.referenced.Add(e.Name)
		if !ctx.contains(e.Name) {
			if e.Name == ctx.currentAssignment {
				ctx.diags.Errorf("name '%s' referenced in its definition", e.Name)
			} else {
				ctx.diags.Errorf("undefined name '%s' in definition of '%s'", e.Name, ctx.currentAssignment)
			}
		}
		return &Identifier{Name: e.Name}
	case *ast.Parenthesis:
		return &Parenthesis{Application: transformApplication(e.Application, ctx)}
	case *ast.Lambda:
		return transformLambda(e, ctx)
	default:
		panic("capture: unknown ast.Expression variant")
	}
}

// transformLambda implements the lambda-entry algorithm: fork a
// sub-scope with the argument added to locals and referenced reset,
// recurse into the body, compute captures as the post-recursion
// referenced set intersected with the parent's locals (excluding the
// lambda's own argument, removed first), then merge the sub-scope's
// referenced names and diagnostics back into the parent so capture
// computation keeps working correctly for enclosing lambdas.
func transformLambda(lambda *ast.Lambda, ctx *context) *Lambda {
	id := ctx.nextID
	ctx.nextID++

	savedLocals := ctx.locals
	savedReferenced := ctx.referenced

	subLocals := identset.New(savedLocals.Slice()...)
	subLocals.Add(lambda.Argument)
	ctx.locals = subLocals
	ctx.referenced = identset.New()

	body := transformApplication(lambda.Body, ctx)

	ctx.referenced.Remove(lambda.Argument)
	captures := ctx.referenced.Intersect(savedLocals)

	merged := identset.New(savedReferenced.Slice()...)
	merged.Union(ctx.referenced)
	ctx.locals = savedLocals
	ctx.referenced = merged

	return &Lambda{
		Argument: lambda.Argument,
		Body:     body,
		ID:       id,
		Captures: captures,
	}
}

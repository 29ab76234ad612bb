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

package closure

import (
	"lambdac.org/go/internal/core/cps"
	"lambdac.org/go/internal/core/identset"
	"lambdac.org/go/internal/core/idset"
)

// Analyze runs continuation-capture analysis over a CPS-converted
// tree. Top-level assignment chains have no enclosing lambda, so
// identifier literals there never resolve to a capture: every name
// reachable at assignment scope is a global, referenced directly.
func Analyze(prog *cps.Program) *Program {
	out := &Program{}
	for _, ass := range prog.Assignments {
		continuations, result := analyzeChain(ass.Continuations, ass.Result, identset.New())
		out.Assignments = append(out.Assignments, &Assignment{
			Target:        ass.Target,
			Continuations: continuations,
			Result:        result,
		})
	}
	return out
}

func analyzeLambda(l *cps.Lambda) *Lambda {
	// Identifier literals within this lambda's own chain resolve either
	// to its captures (threaded in from an enclosing frame) or to its
	// own argument (the continuation's direct "arg" input) — both are
	// named slots a continuation body can reference, as opposed to
	// globals, which it reaches directly. `ap = f -> x -> f x` gives the
	// single continuation `captures = {f, x}`, not just `{f}`, so the
	// lambda's own argument must be folded into this scope alongside
	// its captures.
	scope := identset.New(l.Captures.Slice()...)
	scope.Add(l.Argument)

	continuations, result := analyzeChain(l.Continuations, l.Result, scope)
	return &Lambda{
		Argument:      l.Argument,
		ID:            l.ID,
		Captures:      l.Captures,
		Continuations: continuations,
		Result:        result,
	}
}

// analyzeChain propagates capture sets in reverse order over one chain
// (an assignment RHS or a lambda body), given scope, the enclosing
// lambda's own capture set plus its argument (or the empty set at
// assignment level) against which IdentifierLiteral references are
// checked.
func analyzeChain(conts []*cps.Continuation, result cps.Literal, scope *identset.Set) ([]*Continuation, Literal) {
	decorated := make([]*Continuation, len(conts))
	for i, c := range conts {
		decorated[i] = &Continuation{
			ID:                c.ID,
			Function:          convertLiteral(c.Function),
			Argument:          convertLiteral(c.Argument),
			Captures:          identset.New(),
			AnonymousCaptures: idset.New(),
		}
	}
	out := convertLiteral(result)

	for i := len(decorated) - 1; i >= 0; i-- {
		c := decorated[i]
		if i+1 < len(decorated) {
			next := decorated[i+1]
			c.Captures.Union(next.Captures)
			c.AnonymousCaptures.Union(next.AnonymousCaptures)
			c.AnonymousCaptures.Remove(c.ID)
		}
		contribute(c.Function, c, scope)
		contribute(c.Argument, c, scope)
	}

	// The chain's result literal contributes to the final continuation,
	// eliding the case where it is exactly that continuation's own
	// Anonymous(id): that value is the continuation's return value, not
	// something it captures. A chain of length zero has no continuation
	// to attach it to; the backend's empty-chain case emits the literal
	// directly instead.
	if len(decorated) > 0 {
		contributeResult(out, decorated[len(decorated)-1], scope)
	}

	return decorated, out
}

// contributeResult folds the chain's trailing result literal into the
// final continuation c, eliding Anonymous(c.ID) as c's own return
// value rather than a capture.
func contributeResult(lit Literal, c *Continuation, scope *identset.Set) {
	if a, ok := lit.(*AnonymousLiteral); ok && a.ID == c.ID {
		return
	}
	contribute(lit, c, scope)
}

// contribute folds a single operand or result literal's capture
// contribution into continuation c.
func contribute(lit Literal, c *Continuation, scope *identset.Set) {
	switch l := lit.(type) {
	case *AnonymousLiteral:
		if l.ID != c.ID-1 {
			c.AnonymousCaptures.Add(l.ID)
		}
	case *IdentifierLiteral:
		if scope.Contains(l.Name) {
			c.Captures.Add(l.Name)
		}
	case *LambdaLiteral:
		c.Captures.Union(l.Lambda.Captures)
	}
}

func convertLiteral(lit cps.Literal) Literal {
	switch l := lit.(type) {
	case *cps.AnonymousLiteral:
		return &AnonymousLiteral{ID: l.ID}
	case *cps.IdentifierLiteral:
		return &IdentifierLiteral{Name: l.Name}
	case *cps.LambdaLiteral:
		return &LambdaLiteral{Lambda: analyzeLambda(l.Lambda)}
	default:
		panic("closure: unknown cps.Literal variant")
	}
}

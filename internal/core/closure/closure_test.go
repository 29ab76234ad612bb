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

package closure_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/internal/core/capture"
	"lambdac.org/go/internal/core/closure"
	"lambdac.org/go/internal/core/cps"
	"lambdac.org/go/parser"
)

func analyze(t *testing.T, src string) *closure.Program {
	t.Helper()
	prog, errs := parser.ParseFile("test.lc", []byte(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	decorated, diags := capture.Analyze(prog)
	qt.Assert(t, qt.HasLen(diags, 0))
	return closure.Analyze(cps.Convert(decorated))
}

// two-arg application: ap = f -> x -> f x
// The single continuation has captures = {f, x} and
// anonymous_captures = ∅.
func TestTwoArgApplicationCaptures(t *testing.T) {
	prog := analyze(t, "ap = f -> x -> f x\n")
	outer := prog.Assignments[0].Result.(*closure.LambdaLiteral).Lambda
	inner := outer.Result.(*closure.LambdaLiteral).Lambda

	qt.Assert(t, qt.HasLen(inner.Continuations, 1))
	c := inner.Continuations[0]
	qt.Assert(t, qt.DeepEquals(c.Captures.Slice(), []string{"f", "x"}))
	qt.Assert(t, qt.Equals(c.AnonymousCaptures.Len(), 0))
}

// three-arg nested: t = a -> b -> c -> a b c
// Continuation 1's anonymous_captures is ∅ (Anonymous(0) elided as the
// immediate predecessor). Continuation 0's captures is {a,b,c}.
func TestThreeArgNestedCaptures(t *testing.T) {
	prog := analyze(t, "t = a -> b -> c -> a b c\n")
	l0 := prog.Assignments[0].Result.(*closure.LambdaLiteral).Lambda
	l1 := l0.Result.(*closure.LambdaLiteral).Lambda
	l2 := l1.Result.(*closure.LambdaLiteral).Lambda

	qt.Assert(t, qt.HasLen(l2.Continuations, 2))
	c0, c1 := l2.Continuations[0], l2.Continuations[1]

	qt.Assert(t, qt.Equals(c1.AnonymousCaptures.Len(), 0))
	qt.Assert(t, qt.DeepEquals(c0.Captures.Slice(), []string{"a", "b", "c"}))
	qt.Assert(t, qt.Equals(c0.AnonymousCaptures.Len(), 0))
}

// Elision rule: Anonymous(u) is a capture of continuation c unless
// u == c.id - 1 — the immediately preceding result, passed in directly
// as the continuation's "arg", is never a capture; any other
// Anonymous reference is.
func TestAnonymousElisionNonAdjacent(t *testing.T) {
	prog := analyze(t, "q = a -> b -> c -> d -> a b (c d) (a b)\n")
	l3 := prog.Assignments[0].Result.(*closure.LambdaLiteral).Lambda.
		Result.(*closure.LambdaLiteral).Lambda.
		Result.(*closure.LambdaLiteral).Lambda.
		Result.(*closure.LambdaLiteral).Lambda

	// Flattened chain: cont0 = a b; cont1 = c d (inlined); cont2 =
	// Anonymous(0) Anonymous(1); cont3 = a b (inlined again); cont4 =
	// Anonymous(2) Anonymous(3).
	qt.Assert(t, qt.HasLen(l3.Continuations, 5))

	cont2 := l3.Continuations[2]
	qt.Assert(t, qt.Equals(cont2.ID, 2))
	qt.Assert(t, qt.DeepEquals(cont2.AnonymousCaptures.Slice(), []int{0}))

	cont4 := l3.Continuations[4]
	qt.Assert(t, qt.Equals(cont4.ID, 4))
	qt.Assert(t, qt.DeepEquals(cont4.AnonymousCaptures.Slice(), []int{2}))
}

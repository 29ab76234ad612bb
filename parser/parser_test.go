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

package parser_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/ast"
	"lambdac.org/go/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := parser.ParseFile("test.lc", []byte(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	return prog
}

func TestSingleIdentifier(t *testing.T) {
	prog := parse(t, "id = x\n")
	qt.Assert(t, qt.HasLen(prog.Assignments, 1))
	ass := prog.Assignments[0]
	qt.Assert(t, qt.Equals(ass.Target, "id"))

	exprs := ass.Value.Expressions()
	qt.Assert(t, qt.HasLen(exprs, 1))
	ident, ok := exprs[0].(*ast.Identifier)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ident.Name, "x"))
}

func TestApplicationIsLeftAssociative(t *testing.T) {
	prog := parse(t, "f = a b c\n")
	exprs := prog.Assignments[0].Value.Expressions()
	qt.Assert(t, qt.HasLen(exprs, 3))
	for i, name := range []string{"a", "b", "c"} {
		ident, ok := exprs[i].(*ast.Identifier)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(ident.Name, name))
	}
}

// A lambda greedily swallows every expression that follows it within
// the same application, so it can only ever be the final element.
func TestLambdaGreedilyConsumesTrailingExpressions(t *testing.T) {
	prog := parse(t, "f = g -> x -> g x\n")
	exprs := prog.Assignments[0].Value.Expressions()
	qt.Assert(t, qt.HasLen(exprs, 1))

	outer, ok := exprs[0].(*ast.Lambda)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(outer.Argument, "g"))

	inner, ok := outer.Body.Expressions()[0].(*ast.Lambda)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(inner.Argument, "x"))

	body := inner.Body.Expressions()
	qt.Assert(t, qt.HasLen(body, 2))
}

func TestParenthesizedSubApplication(t *testing.T) {
	prog := parse(t, "w = x (y z)\n")
	exprs := prog.Assignments[0].Value.Expressions()
	qt.Assert(t, qt.HasLen(exprs, 2))

	paren, ok := exprs[1].(*ast.Parenthesis)
	qt.Assert(t, qt.IsTrue(ok))
	inner := paren.Application.Expressions()
	qt.Assert(t, qt.HasLen(inner, 2))
}

// A newline at parenthesis depth zero ends the application, but one
// inside parentheses, or immediately after '=' or '->', is just
// whitespace.
func TestPermissiveContinuation(t *testing.T) {
	prog := parse(t, "w =\n  x (y\n     z)\n")
	qt.Assert(t, qt.HasLen(prog.Assignments, 1))
	exprs := prog.Assignments[0].Value.Expressions()
	qt.Assert(t, qt.HasLen(exprs, 2))
}

func TestMultipleAssignments(t *testing.T) {
	prog := parse(t, "id = x -> x\nconst = x -> y -> x\n")
	qt.Assert(t, qt.HasLen(prog.Assignments, 2))
	qt.Assert(t, qt.Equals(prog.Assignments[0].Target, "id"))
	qt.Assert(t, qt.Equals(prog.Assignments[1].Target, "const"))
}

// Parse errors accumulate rather than stopping at the first mistake,
// and recovery resumes at the next statement boundary.
func TestErrorRecoveryContinuesToNextStatement(t *testing.T) {
	_, errs := parser.ParseFile("test.lc", []byte("= x\nid = y\n"))
	qt.Assert(t, qt.HasLen(errs, 1))
}

func TestMissingClosingParenIsAnError(t *testing.T) {
	_, errs := parser.ParseFile("test.lc", []byte("w = (x y\n"))
	qt.Assert(t, qt.IsTrue(len(errs) > 0))
}

func TestEmptyProgram(t *testing.T) {
	prog := parse(t, "")
	qt.Assert(t, qt.HasLen(prog.Assignments, 0))
}

func TestLineCommentsAreIgnored(t *testing.T) {
	prog := parse(t, "# a comment\nid = x # trailing\n")
	qt.Assert(t, qt.HasLen(prog.Assignments, 1))
}

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

// Package cplusplus emits the "simple" C++ target: std::function-based
// closures over the surface AST, distinct from internal/codegen/cppcps,
// which emits the closure-free CPS runtime.
package cplusplus

import (
	_ "embed"
	"fmt"
	"strings"

	"lambdac.org/go/ast"
	"lambdac.org/go/internal/codegen/mangle"
	"lambdac.org/go/internal/codegen/wordlist"
)

//go:embed prelude.cpp
var prelude string

var reservedWords = wordlist.MustLoad("cplusplus")

func generateIdentifier(name string) string {
	return mangle.Identifier(name, reservedWords)
}

func generateLambda(l *ast.Lambda) string {
	return fmt.Sprintf("lambda([=](lambda %s) { return %s; })", generateIdentifier(l.Argument), generateApplication(l.Body))
}

func generateExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Identifier:
		return generateIdentifier(e.Name)
	case *ast.Parenthesis:
		return "(" + generateApplication(e.Application) + ")"
	case *ast.Lambda:
		return generateLambda(e)
	default:
		panic("cplusplus: unknown ast.Expression variant")
	}
}

func generateApplication(app *ast.Application) string {
	exprs := app.Expressions()
	if len(exprs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(generateExpression(exprs[0]))
	for _, e := range exprs[1:] {
		b.WriteString("(")
		b.WriteString(generateExpression(e))
		b.WriteString(")")
	}
	return b.String()
}

func generateAssignment(ass *ast.Assignment) string {
	return fmt.Sprintf("lambda %s = [](){ return %s; }();", generateIdentifier(ass.Target), generateApplication(ass.Value))
}

// Generate emits a simple-C++ program implementing prog, with the
// runtime prelude concatenated first.
func Generate(prog *ast.Program) string {
	var b strings.Builder
	b.WriteString(prelude)
	for _, ass := range prog.Assignments {
		b.WriteString(generateAssignment(ass))
		b.WriteString("\n")
	}
	return b.String()
}

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

// Package prettyprint renders a surface ast.Program back to source
// text. It is a faithful inverse of the parser: every parenthesized
// sub-application keeps its parentheses, a lambda used as a non-final
// operand is parenthesized, and no other parentheses are added.
package prettyprint

import (
	"fmt"
	"strings"

	"lambdac.org/go/ast"
)

// Program renders prog as lambdac source text, one assignment per line.
func Program(prog *ast.Program) string {
	var b strings.Builder
	for _, ass := range prog.Assignments {
		fmt.Fprintf(&b, "%s = %s\n", ass.Target, application(ass.Value))
	}
	return b.String()
}

func application(a *ast.Application) string {
	exprs := a.Expressions()
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = expression(e, i < len(exprs)-1)
	}
	return strings.Join(parts, " ")
}

// expression renders e as an application operand. notFinal reports
// whether e is followed by another operand in its enclosing
// application: a Lambda in that position must be parenthesized, since
// an unparenthesized lambda body swallows every expression to its
// right.
func expression(e ast.Expression, notFinal bool) string {
	switch v := e.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.Parenthesis:
		return "(" + application(v.Application) + ")"
	case *ast.Lambda:
		s := fmt.Sprintf("%s -> %s", v.Argument, application(v.Body))
		if notFinal {
			return "(" + s + ")"
		}
		return s
	default:
		panic(fmt.Sprintf("prettyprint: unknown ast.Expression variant %T", e))
	}
}

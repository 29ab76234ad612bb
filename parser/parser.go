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

// Package parser implements the surface grammar: a recursive-descent
// parser over the token stream produced by lambdac.org/go/scanner,
// producing an *ast.Program.
//
// It is implemented in full so the CLI has a real front end to drive
// the core with, following the error-list shape of
// cuelang.org/go/cue/parser (accumulate, don't stop at the first
// mistake) even though the driver discards a program that failed to
// parse rather than feeding it to the core.
package parser

import (
	"fmt"

	"lambdac.org/go/ast"
	"lambdac.org/go/errors"
	"lambdac.org/go/scanner"
	"lambdac.org/go/token"
)

// ParseFile parses the given source, named filename for diagnostics.
func ParseFile(filename string, src []byte) (*ast.Program, errors.List) {
	p := &parser{}
	p.init(filename, src)
	prog := p.parseProgram()
	return prog, p.errs
}

type parser struct {
	filename string
	errs     errors.List

	sc scanner.Scanner

	tok token.Token
	lit string
	pos token.Pos

	parenDepth int
}

func (p *parser) init(filename string, src []byte) {
	p.filename = filename
	p.sc.Init(filename, src, func(pos token.Pos, msg string) {
		p.errs.Errorf("%s: %s", pos, msg)
	})
	p.next()
}

func (p *parser) next() {
	p.tok, p.lit, p.pos = p.sc.Scan()
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	p.errs.Errorf("%s: %s", pos, fmt.Sprintf(format, args...))
}

// skipNewlines consumes any run of NEWLINE tokens. It is called at
// statement boundaries and, per the permissive-continuation rule,
// after '=' and '->' and while inside parentheses, so that a line
// break there never ends the current application.
func (p *parser) skipNewlines() {
	for p.tok == token.NEWLINE {
		p.next()
	}
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}

	p.skipNewlines()
	for p.tok != token.EOF {
		ass := p.parseAssignment()
		if ass != nil {
			prog.Assignments = append(prog.Assignments, ass)
		}
		if p.tok != token.EOF && p.tok != token.NEWLINE {
			p.errorf(p.pos, "expected newline or end of file, found %s", p.tok)
			p.recoverToNewline()
		}
		p.skipNewlines()
	}

	return prog
}

// recoverToNewline advances past tokens until a statement boundary, so
// a single malformed assignment doesn't cascade into spurious errors
// for the rest of the file.
func (p *parser) recoverToNewline() {
	for p.tok != token.NEWLINE && p.tok != token.EOF {
		p.next()
	}
}

func (p *parser) parseAssignment() *ast.Assignment {
	if p.tok != token.IDENT {
		p.errorf(p.pos, "expected identifier, found %s", p.tok)
		p.recoverToNewline()
		return nil
	}
	target := p.lit
	p.next()

	if p.tok != token.ASSIGN {
		p.errorf(p.pos, "expected '=', found %s", p.tok)
		p.recoverToNewline()
		return nil
	}
	p.next()
	p.skipNewlines() // continuation permitted after '='

	value := p.parseApplication()
	if value == nil {
		p.errorf(p.pos, "expected an expression")
		return nil
	}

	return &ast.Assignment{Target: target, Value: value}
}

// atApplicationEnd reports whether the current token cannot start
// another expression within the application being parsed.
func (p *parser) atApplicationEnd() bool {
	switch p.tok {
	case token.RPAREN, token.EOF:
		return true
	case token.NEWLINE:
		// Inside parentheses a newline is just whitespace (permissive
		// continuation); at depth 0 it ends the application.
		return p.parenDepth == 0
	default:
		return false
	}
}

// parseApplication parses a left-associative, non-empty sequence of
// expressions. Wherever an identifier is immediately followed by
// "->", it becomes a Lambda whose body greedily consumes
// every remaining expression in this application — so a lambda can
// only ever be the last expression produced by a call to
// parseApplication.
func (p *parser) parseApplication() *ast.Application {
	if p.parenDepth > 0 {
		p.skipNewlines()
	}
	if p.atApplicationEnd() {
		return nil
	}

	var exprs []ast.Expression
	for {
		if p.tok == token.IDENT {
			name := p.lit
			p.next()
			if p.tok == token.ARROW {
				p.next()
				p.skipNewlines() // continuation permitted after '->'
				body := p.parseApplication()
				if body == nil {
					p.errorf(p.pos, "expected a lambda body")
					body = &ast.Application{Head: &ast.Identifier{Name: name}}
				}
				exprs = append(exprs, &ast.Lambda{Argument: name, Body: body})
				break // the lambda swallows the rest of this application
			}
			exprs = append(exprs, &ast.Identifier{Name: name})
		} else if p.tok == token.LPAREN {
			p.next()
			p.parenDepth++
			inner := p.parseApplication()
			p.parenDepth--
			p.skipNewlines()
			if p.tok != token.RPAREN {
				p.errorf(p.pos, "expected ')', found %s", p.tok)
				p.recoverToNewline()
				return buildApplication(exprs)
			}
			p.next()
			if inner == nil {
				p.errorf(p.pos, "parentheses must contain an application")
				inner = &ast.Application{Head: &ast.Identifier{Name: "_"}}
			}
			exprs = append(exprs, &ast.Parenthesis{Application: inner})
		} else {
			p.errorf(p.pos, "expected an identifier or '(', found %s", p.tok)
			return buildApplication(exprs)
		}

		if p.parenDepth > 0 {
			p.skipNewlines()
		}
		if p.atApplicationEnd() {
			break
		}
	}

	return buildApplication(exprs)
}

// buildApplication assembles a left-associative Head/Tail chain from a
// flat list of expressions gathered in source order.
func buildApplication(exprs []ast.Expression) *ast.Application {
	if len(exprs) == 0 {
		return nil
	}
	var tail *ast.Application
	for i := len(exprs) - 1; i >= 1; i-- {
		tail = &ast.Application{Head: exprs[i], Tail: tail}
	}
	return &ast.Application{Head: exprs[0], Tail: tail}
}

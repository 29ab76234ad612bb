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

// Package scanner tokenizes source text for the surface grammar:
// identifiers, "->", parentheses, "=", newlines, and "#" line
// comments.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"lambdac.org/go/token"
)

// ErrorHandler is called for each illegal character the scanner finds.
// The scanner keeps going, emitting an ILLEGAL token for the offending
// rune, so the parser can decide how many errors to surface.
type ErrorHandler func(pos token.Pos, msg string)

// Scanner turns source bytes into a stream of tokens.
type Scanner struct {
	filename string
	src      []byte
	err      ErrorHandler

	offset     int
	rdOffset   int
	line       int
	lineOffset int // byte offset of the start of the current line

	ch rune
}

// Init prepares s to scan src, reporting the file as filename in
// returned positions.
func (s *Scanner) Init(filename string, src []byte, err ErrorHandler) {
	s.filename = filename
	s.src = src
	s.err = err
	s.offset = 0
	s.rdOffset = 0
	s.line = 1
	s.lineOffset = 0
	s.ch = ' '
	s.next()
}

const eof = -1

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = eof
	}
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{
		Filename: s.filename,
		Line:     s.line,
		Column:   s.offset - s.lineOffset + 1,
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func (s *Scanner) skipCommentAndWhitespace() {
	for {
		switch s.ch {
		case ' ', '\t', '\r':
			s.next()
		case '#':
			for s.ch != '\n' && s.ch != eof {
				s.next()
			}
		default:
			return
		}
	}
}

// Scan returns the next token, its literal text (only meaningful for
// IDENT), and its starting position.
func (s *Scanner) Scan() (tok token.Token, lit string, pos token.Pos) {
	s.skipCommentAndWhitespace()

	pos = s.pos()

	switch ch := s.ch; {
	case ch == eof:
		tok = token.EOF
	case ch == '\n':
		s.next()
		s.line++
		s.lineOffset = s.offset
		tok = token.NEWLINE
	case isIdentStart(ch):
		start := s.offset
		for isIdentPart(s.ch) {
			s.next()
		}
		tok = token.IDENT
		lit = string(s.src[start:s.offset])
	case ch == '(':
		s.next()
		tok = token.LPAREN
	case ch == ')':
		s.next()
		tok = token.RPAREN
	case ch == '=':
		s.next()
		tok = token.ASSIGN
	case ch == '-':
		s.next()
		if s.ch == '>' {
			s.next()
			tok = token.ARROW
		} else {
			tok = token.ILLEGAL
			if s.err != nil {
				s.err(pos, "expected '->'")
			}
		}
	default:
		s.next()
		tok = token.ILLEGAL
		if s.err != nil {
			s.err(pos, "unexpected character "+string(ch))
		}
	}

	return tok, lit, pos
}

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

// Package mangle holds the identifier-escaping rules used by the
// codegen backends: Identifier prepends a leading underscore to
// reserved words, identifiers starting with a digit, and identifiers
// already starting with an underscore; SuffixIdentifier additionally
// appends a trailing underscore to identifiers that already end with
// one, unless a suffix is being appended instead. The JavaScript
// backend uses only IsReserved and applies its own escape.
package mangle

import "unicode"

func IsReserved(name string, words []string) bool {
	for _, w := range words {
		if w == name {
			return true
		}
	}
	return false
}

func isNumeric(name string) bool {
	if name == "" {
		return false
	}
	return unicode.IsDigit(rune(name[0]))
}

func isLeadingUnderscore(name string) bool {
	return len(name) > 0 && name[0] == '_'
}

func isTrailingUnderscore(name string) bool {
	return len(name) > 0 && name[len(name)-1] == '_'
}

// Identifier escapes name against words, with no suffix.
func Identifier(name string, words []string) string {
	if IsReserved(name, words) || isNumeric(name) || isLeadingUnderscore(name) {
		return "_" + name
	}
	return name
}

// SuffixIdentifier escapes name as Identifier does, then appends
// suffix if non-empty; otherwise, if name itself ends in an
// underscore, one more is appended so a bare escaped name can never
// collide with a suffixed one.
func SuffixIdentifier(name string, words []string, suffix string) string {
	gen := Identifier(name, words)
	if suffix != "" {
		return gen + suffix
	}
	if isTrailingUnderscore(name) {
		return gen + "_"
	}
	return gen
}

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

// Package errors collects the compiler's diagnostics.
//
// Unlike cuelang.org/go/cue/errors, whose List carries per-error source
// positions and supports wrapping, deduplication, and sorting, this List
// is deliberately flat: the surface AST carries no source spans,
// diagnostics are never deduplicated or reordered, and downstream
// stages never add to a List once capture analysis has produced one.
package errors

import (
	"fmt"
	"strings"
)

// Severity distinguishes a diagnostic that fails a build from one that
// merely warrants attention.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// List is an ordered collection of severity-prefixed diagnostic strings,
// in the order they were produced: source order within an assignment,
// then assignment order.
type List []string

// Addf appends a formatted diagnostic of the given severity.
func (l *List) Addf(sev Severity, format string, args ...any) {
	*l = append(*l, string(sev)+": "+fmt.Sprintf(format, args...))
}

// Errorf appends a formatted "error:" diagnostic.
func (l *List) Errorf(format string, args ...any) {
	l.Addf(Error, format, args...)
}

// Warningf appends a formatted "warning:" diagnostic.
func (l *List) Warningf(format string, args ...any) {
	l.Addf(Warning, format, args...)
}

// HasErrors reports whether any entry in l carries "error:" severity.
// A driver can use this to decide its exit code; warnings alone should
// not fail a build.
func (l List) HasErrors() bool {
	for _, msg := range l {
		if strings.HasPrefix(msg, string(Error)+":") {
			return true
		}
	}
	return false
}

// Error renders the list as newline-separated diagnostics, satisfying
// the error interface so a List can be returned from functions that use
// ordinary Go error conventions (e.g. the parser).
func (l List) Error() string {
	return strings.Join(l, "\n")
}

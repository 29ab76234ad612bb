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

// Package cpserr marks internal-consistency failures downstream of
// capture analysis: if a lambda or anonymous ID referenced in codegen
// is missing from the analyzed IR, that is a compiler bug, not a
// user-facing diagnostic, and should fail fast rather than produce
// malformed output. These are not errors.List diagnostics; they never
// reach the user as compiler output.
package cpserr

import "fmt"

// Bug is the panic value raised by an internal-consistency failure.
// Recovering it and reporting distinctly from parse errors or
// diagnostics lets a driver tell "this input is malformed" apart from
// "the compiler has a bug".
type Bug struct{ Message string }

func (b Bug) Error() string { return "internal error: " + b.Message }

// Panicf raises a Bug with a formatted message. Call it at any point
// downstream of capture analysis that discovers its input violates an
// invariant guaranteed by an earlier stage — a missing Anonymous(u)
// binding, a lambda ID with no matching frame, and so on.
func Panicf(format string, args ...any) {
	panic(Bug{Message: fmt.Sprintf(format, args...)})
}

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

package javascript_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/internal/codegen/javascript"
	"lambdac.org/go/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	prog, errs := parser.ParseFile("test.lc", []byte(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	return javascript.Generate(prog)
}

func TestIdentity(t *testing.T) {
	got := generate(t, "id = x -> x\n")
	qt.Assert(t, qt.Equals(got, "const id = x => x;\n"))
}

func TestApplication(t *testing.T) {
	got := generate(t, "r = f x\n")
	qt.Assert(t, qt.Equals(got, "const r = f(x);\n"))
}

func TestReservedWordEscaped(t *testing.T) {
	got := generate(t, "class = x -> x\n")
	qt.Assert(t, qt.Equals(got, "const _$class = x => x;\n"))
}

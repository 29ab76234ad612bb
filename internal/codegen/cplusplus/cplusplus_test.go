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

package cplusplus_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/internal/codegen/cplusplus"
	"lambdac.org/go/parser"
)

func TestIdentityIncludesPreludeAndAssignment(t *testing.T) {
	prog, errs := parser.ParseFile("test.lc", []byte("id = x -> x\n"))
	qt.Assert(t, qt.HasLen(errs, 0))
	got := cplusplus.Generate(prog)

	qt.Assert(t, qt.IsTrue(strings.Contains(got, "class lambda")))
	qt.Assert(t, qt.IsTrue(strings.Contains(got, "lambda id = [](){ return lambda([=](lambda x) { return x; }); }();\n")))
}

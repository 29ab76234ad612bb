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

package mangle_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/internal/codegen/mangle"
)

var words = []string{"int", "return", "class"}

func TestIdentifierPassesThroughOrdinaryNames(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.Identifier("foo", words), "foo"))
}

func TestIdentifierEscapesReservedWords(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.Identifier("return", words), "_return"))
}

func TestIdentifierEscapesNumericLeading(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.Identifier("3x", words), "_3x"))
}

func TestIdentifierEscapesLeadingUnderscore(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.Identifier("_hidden", words), "__hidden"))
}

func TestSuffixIdentifierAppendsSuffix(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.SuffixIdentifier("ret", words, "_3"), "ret_3"))
}

func TestSuffixIdentifierTrailingUnderscoreWithoutSuffix(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.SuffixIdentifier("foo_", words, ""), "foo__"))
}

func TestSuffixIdentifierReservedWithSuffix(t *testing.T) {
	qt.Assert(t, qt.Equals(mangle.SuffixIdentifier("class", words, "_1_0"), "_class_1_0"))
}

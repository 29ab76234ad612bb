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

package errors_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"lambdac.org/go/errors"
)

func TestAddfOrdering(t *testing.T) {
	var l errors.List
	l.Errorf("first %s", "problem")
	l.Warningf("second problem")
	qt.Assert(t, qt.HasLen(l, 2))
	qt.Assert(t, qt.Equals(l[0], "error: first problem"))
	qt.Assert(t, qt.Equals(l[1], "warning: second problem"))
}

func TestHasErrors(t *testing.T) {
	var warningsOnly errors.List
	warningsOnly.Warningf("careful")
	qt.Assert(t, qt.IsFalse(warningsOnly.HasErrors()))

	var withError errors.List
	withError.Warningf("careful")
	withError.Errorf("broken")
	qt.Assert(t, qt.IsTrue(withError.HasErrors()))
}

func TestErrorJoinsWithNewlines(t *testing.T) {
	var l errors.List
	l.Errorf("a")
	l.Errorf("b")
	qt.Assert(t, qt.Equals(l.Error(), "error: a\nerror: b"))
}

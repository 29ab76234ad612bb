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

package identset

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNewSortsAndDedups(t *testing.T) {
	s := New("b", "a", "b", "c", "a")
	qt.Assert(t, qt.DeepEquals(s.Slice(), []string{"a", "b", "c"}))
}

func TestAddKeepsOrder(t *testing.T) {
	s := New("x", "a")
	s.Add("m")
	s.Add("a")
	qt.Assert(t, qt.DeepEquals(s.Slice(), []string{"a", "m", "x"}))
}

func TestRemove(t *testing.T) {
	s := New("a", "b", "c")
	s.Remove("b")
	qt.Assert(t, qt.DeepEquals(s.Slice(), []string{"a", "c"}))
	s.Remove("not-present")
	qt.Assert(t, qt.DeepEquals(s.Slice(), []string{"a", "c"}))
}

func TestContains(t *testing.T) {
	s := New("a", "b", "c")
	qt.Assert(t, qt.IsTrue(s.Contains("b")))
	qt.Assert(t, qt.IsFalse(s.Contains("z")))
	qt.Assert(t, qt.IsFalse(New().Contains("b")))
}

func TestUnion(t *testing.T) {
	s := New("a", "c")
	s.Union(New("b", "c", "d"))
	qt.Assert(t, qt.DeepEquals(s.Slice(), []string{"a", "b", "c", "d"}))
}

func TestIntersect(t *testing.T) {
	s := New("a", "b", "c")
	got := s.Intersect(New("b", "c", "d"))
	qt.Assert(t, qt.DeepEquals(got.Slice(), []string{"b", "c"}))
}

func TestIntersectNilOther(t *testing.T) {
	s := New("a", "b")
	got := s.Intersect(nil)
	qt.Assert(t, qt.Equals(got.Len(), 0))
}

func TestLenAndNilReceiver(t *testing.T) {
	var s *Set
	qt.Assert(t, qt.Equals(s.Len(), 0))
	qt.Assert(t, qt.IsNil(s.Slice()))
}

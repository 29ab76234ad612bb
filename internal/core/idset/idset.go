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

// Package idset is the integer-keyed counterpart of
// lambdac.org/go/internal/core/identset, used for a continuation's
// anonymous-capture set, kept in numeric ascending order for
// deterministic codegen.
package idset

import "github.com/mpvl/unique"

// Set is a numerically ordered set of continuation/anonymous-result IDs.
type Set struct {
	items []int
}

// New builds a Set from the given ids, in any order and with any
// duplicates; the result is sorted and deduplicated.
func New(ids ...int) *Set {
	s := &Set{items: append([]int(nil), ids...)}
	s.normalize()
	return s
}

// Add inserts id into the set if it is not already present.
func (s *Set) Add(id int) {
	s.items = append(s.items, id)
	s.normalize()
}

// Remove deletes id from the set, if present.
func (s *Set) Remove(id int) {
	for i, item := range s.items {
		if item == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id int) bool {
	for _, item := range s.items {
		if item == id {
			return true
		}
	}
	return false
}

// Union extends s with every element of other.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.items = append(s.items, other.items...)
	s.normalize()
}

// Slice returns the set's elements in ascending order. The caller must
// not mutate the returned slice.
func (s *Set) Slice() []int {
	if s == nil {
		return nil
	}
	return s.items
}

// Len reports the number of elements in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Set) normalize() {
	sortable := (*sortableInts)(&s.items)
	unique.Sort(sortable)
}

type sortableInts []int

func (s *sortableInts) Len() int           { return len(*s) }
func (s *sortableInts) Less(i, j int) bool { return (*s)[i] < (*s)[j] }
func (s *sortableInts) Swap(i, j int)      { (*s)[i], (*s)[j] = (*s)[j], (*s)[i] }
func (s *sortableInts) Truncate(n int)     { *s = (*s)[:n] }

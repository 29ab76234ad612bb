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

// Package identset implements an ordered identifier set for every
// capture set in the pipeline: a hash-based set would make codegen
// output order-sensitive on map iteration, which isn't acceptable for
// a compiler's emitted code. Uniqueness is maintained with
// github.com/mpvl/unique, the same sort-and-collapse helper
// cuelang.org/go uses to keep import-path lists both sorted and
// duplicate-free in one pass, rather than a hand-rolled dedup loop.
package identset

import "github.com/mpvl/unique"

// Set is a lexicographically ordered set of identifiers.
type Set struct {
	items []string
}

// New builds a Set from the given names, in any order and with any
// duplicates; the result is sorted and deduplicated.
func New(names ...string) *Set {
	s := &Set{items: append([]string(nil), names...)}
	s.normalize()
	return s
}

// Add inserts name into the set if it is not already present.
func (s *Set) Add(name string) {
	s.items = append(s.items, name)
	s.normalize()
}

// Remove deletes name from the set, if present.
func (s *Set) Remove(name string) {
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	_, found := search(s.items, name)
	return found
}

// Union extends s with every element of other.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.items = append(s.items, other.items...)
	s.normalize()
}

// Intersect returns a new Set holding the elements common to s and
// other, used by capture analysis to restrict a lambda's referenced
// names down to those legally in scope.
func (s *Set) Intersect(other *Set) *Set {
	result := &Set{}
	if other == nil {
		return result
	}
	for _, item := range s.items {
		if other.Contains(item) {
			result.items = append(result.items, item)
		}
	}
	return result
}

// Slice returns the set's elements in ascending lexicographic order.
// The caller must not mutate the returned slice.
func (s *Set) Slice() []string {
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
	sortable := (*sortableStrings)(&s.items)
	unique.Sort(sortable)
}

func search(items []string, name string) (int, bool) {
	lo, hi := 0, len(items)
	for lo < hi {
		mid := (lo + hi) / 2
		if items[mid] < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(items) && items[lo] == name
}

// sortableStrings adapts a *[]string to unique.Interface.
type sortableStrings []string

func (s *sortableStrings) Len() int           { return len(*s) }
func (s *sortableStrings) Less(i, j int) bool { return (*s)[i] < (*s)[j] }
func (s *sortableStrings) Swap(i, j int)      { (*s)[i], (*s)[j] = (*s)[j], (*s)[i] }
func (s *sortableStrings) Truncate(n int)     { *s = (*s)[:n] }

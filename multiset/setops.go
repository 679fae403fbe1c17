// Copyright 2025 go-highway Authors
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

package multiset

import "github.com/ajroetker/go-multiset/hwy/contrib/algo"

// Intersection returns the pointwise minimum of m and other.
func (m *Multiset[T, S]) Intersection(other *Multiset[T, S]) Multiset[T, S] {
	r := *m
	algo.MinAssign(r.counts(), other.counts(), lanesFor[T]())
	return r
}

// Union returns the pointwise maximum of m and other.
func (m *Multiset[T, S]) Union(other *Multiset[T, S]) Multiset[T, S] {
	r := *m
	algo.MaxAssign(r.counts(), other.counts(), lanesFor[T]())
	return r
}

// Equal reports whether every counter of m equals the one in other.
func (m *Multiset[T, S]) Equal(other *Multiset[T, S]) bool {
	return algo.All(m.counts(), other.counts(), algo.Equal[T]{}, lanesFor[T]())
}

// IsSubset reports whether m[i] <= other[i] for every element.
func (m *Multiset[T, S]) IsSubset(other *Multiset[T, S]) bool {
	return algo.All(m.counts(), other.counts(), algo.LessEqual[T]{}, lanesFor[T]())
}

// IsSuperset reports whether m[i] >= other[i] for every element.
func (m *Multiset[T, S]) IsSuperset(other *Multiset[T, S]) bool {
	return algo.All(m.counts(), other.counts(), algo.GreaterEqual[T]{}, lanesFor[T]())
}

// IsProperSubset reports whether m is a subset of other and differs from it.
func (m *Multiset[T, S]) IsProperSubset(other *Multiset[T, S]) bool {
	return m.IsSubset(other) && m.IsAnyLesser(other)
}

// IsProperSuperset reports whether m is a superset of other and differs
// from it.
func (m *Multiset[T, S]) IsProperSuperset(other *Multiset[T, S]) bool {
	return m.IsSuperset(other) && m.IsAnyGreater(other)
}

// IsAnyLesser reports whether m[i] < other[i] for some element.
func (m *Multiset[T, S]) IsAnyLesser(other *Multiset[T, S]) bool {
	return algo.Any(m.counts(), other.counts(), algo.Less[T]{}, lanesFor[T]())
}

// IsAnyGreater reports whether m[i] > other[i] for some element.
func (m *Multiset[T, S]) IsAnyGreater(other *Multiset[T, S]) bool {
	return algo.Any(m.counts(), other.counts(), algo.Greater[T]{}, lanesFor[T]())
}

// IsDisjoint reports whether no element has a non-zero count in both m
// and other, i.e. the intersection is empty.
func (m *Multiset[T, S]) IsDisjoint(other *Multiset[T, S]) bool {
	return !algo.Intersects(m.counts(), other.counts(), lanesFor[T]())
}

// Ordering is the result of PartialCompare.
type Ordering int

const (
	// Less means every counter is <= and at least one is <.
	Less Ordering = -1

	// Equal means every counter is equal.
	Equal Ordering = 0

	// Greater means every counter is >= and at least one is >.
	Greater Ordering = 1

	// Incomparable means some counter is < and another is >.
	Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "unknown"
	}
}

// PartialCompare orders m and other by inclusion: m is Less than other
// when it is a proper subset.
func (m *Multiset[T, S]) PartialCompare(other *Multiset[T, S]) Ordering {
	lesser := m.IsAnyLesser(other)
	greater := m.IsAnyGreater(other)
	switch {
	case lesser && greater:
		return Incomparable
	case lesser:
		return Less
	case greater:
		return Greater
	default:
		return Equal
	}
}

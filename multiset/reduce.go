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

// Total returns the sum of all counters. The sum wraps modulo 2^bits when
// it does not fit in T.
func (m *Multiset[T, S]) Total() T {
	return algo.Sum(m.counts(), lanesFor[T]())
}

// CountNonZero returns the number of elements with a non-zero count.
func (m *Multiset[T, S]) CountNonZero() int {
	return algo.CountNonZero(m.counts(), lanesFor[T]())
}

// CountZero returns the number of elements with a zero count.
func (m *Multiset[T, S]) CountZero() int {
	return len(m.data) - m.CountNonZero()
}

// IsEmpty reports whether every counter is zero.
func (m *Multiset[T, S]) IsEmpty() bool {
	return algo.AllZero(m.counts(), lanesFor[T]())
}

// IsSingleton reports whether exactly one element has a non-zero count.
func (m *Multiset[T, S]) IsSingleton() bool {
	return m.CountNonZero() == 1
}

// Argmax returns the index and count of the first element with the largest
// count. It returns (-1, 0) when the domain is empty.
func (m *Multiset[T, S]) Argmax() (int, T) {
	return algo.ArgMax(m.counts(), lanesFor[T]())
}

// Argmin returns the index and count of the first element with the
// smallest count. It returns (-1, 0) when the domain is empty.
func (m *Multiset[T, S]) Argmin() (int, T) {
	return algo.ArgMin(m.counts(), lanesFor[T]())
}

// Imax returns the index of the first element with the largest count.
func (m *Multiset[T, S]) Imax() int {
	i, _ := m.Argmax()
	return i
}

// Imin returns the index of the first element with the smallest count.
func (m *Multiset[T, S]) Imin() int {
	i, _ := m.Argmin()
	return i
}

// Max returns the largest count.
func (m *Multiset[T, S]) Max() T {
	return algo.Max(m.counts(), lanesFor[T]())
}

// Min returns the smallest count.
func (m *Multiset[T, S]) Min() T {
	return algo.Min(m.counts(), lanesFor[T]())
}

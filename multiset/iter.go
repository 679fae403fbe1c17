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

import "iter"

// All returns an iterator over (element, count) pairs in element order.
func (m *Multiset[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range m.counts() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the counts in element order.
func (m *Multiset[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.counts() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a cursor over a copy of a multiset's counters.
type Iterator[T Counter, S Storage[T]] struct {
	ms    Multiset[T, S]
	index int
}

// Iter returns a cursor positioned at element 0. Later changes to m are
// not seen by the cursor.
func (m *Multiset[T, S]) Iter() *Iterator[T, S] {
	return &Iterator[T, S]{ms: *m}
}

// Next returns the next count. ok is false once all N counts were returned.
func (it *Iterator[T, S]) Next() (v T, ok bool) {
	if it.index >= len(it.ms.data) {
		return 0, false
	}
	v = *it.ms.at(it.index)
	it.index++
	return v, true
}

// Len returns the number of counts not yet returned by Next.
func (it *Iterator[T, S]) Len() int {
	return len(it.ms.data) - it.index
}

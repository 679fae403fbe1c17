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

import (
	"fmt"
	"iter"
	"unsafe"
)

// Multiset is a fixed-size multiset over the domain {0, ..., N-1} where N
// is the length of the array type S. The zero value is the empty multiset.
//
// A Multiset owns its counters; assigning it copies them.
type Multiset[T Counter, S Storage[T]] struct {
	data S
}

// Empty returns a multiset with every counter zero.
func Empty[T Counter, S Storage[T]]() Multiset[T, S] {
	return Multiset[T, S]{}
}

// Repeat returns a multiset with every counter set to v.
func Repeat[T Counter, S Storage[T]](v T) Multiset[T, S] {
	var m Multiset[T, S]
	c := m.counts()
	for i := range c {
		c[i] = v
	}
	return m
}

// FromSlice returns a multiset holding a copy of s.
//
// It panics with a *LengthMismatchError if len(s) is not the domain size.
func FromSlice[T Counter, S Storage[T]](s []T) Multiset[T, S] {
	var m Multiset[T, S]
	if len(s) != len(m.data) {
		panic(&LengthMismatchError{Expected: len(m.data), Actual: len(s)})
	}
	copy(m.counts(), s)
	return m
}

// FromSeq returns a multiset holding the first N values of seq. Missing
// values are zero; values after the first N are not consumed.
func FromSeq[T Counter, S Storage[T]](seq iter.Seq[T]) Multiset[T, S] {
	var m Multiset[T, S]
	c := m.counts()
	if len(c) == 0 {
		return m
	}
	i := 0
	for v := range seq {
		c[i] = v
		i++
		if i == len(c) {
			break
		}
	}
	return m
}

// counts returns a slice aliasing the counters of m.
func (m *Multiset[T, S]) counts() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&m.data)), len(m.data))
}

// at returns a pointer to counter i without a bounds check.
func (m *Multiset[T, S]) at(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(&m.data), uintptr(i)*unsafe.Sizeof(*new(T))))
}

// Len returns the domain size N.
func (m *Multiset[T, S]) Len() int {
	return len(m.data)
}

// Array returns a copy of the counters as the backing array type.
func (m *Multiset[T, S]) Array() S {
	return m.data
}

// Clear sets every counter to zero.
func (m *Multiset[T, S]) Clear() {
	clear(m.counts())
}

// Get returns counter i. ok is false when i is out of range.
func (m *Multiset[T, S]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= len(m.data) {
		return 0, false
	}
	return *m.at(i), true
}

// GetUnchecked returns counter i.
//
// i must be in [0, N). Otherwise the behavior is undefined.
func (m *Multiset[T, S]) GetUnchecked(i int) T {
	return *m.at(i)
}

// Contains reports whether element i has a non-zero count. It is false
// when i is out of range.
func (m *Multiset[T, S]) Contains(i int) bool {
	if i < 0 || i >= len(m.data) {
		return false
	}
	return *m.at(i) > 0
}

// ContainsUnchecked reports whether element i has a non-zero count.
//
// i must be in [0, N). Otherwise the behavior is undefined.
func (m *Multiset[T, S]) ContainsUnchecked(i int) bool {
	return *m.at(i) > 0
}

// Insert sets the count of element i to amount. It does nothing when i is
// out of range.
func (m *Multiset[T, S]) Insert(i int, amount T) {
	if i < 0 || i >= len(m.data) {
		return
	}
	*m.at(i) = amount
}

// InsertUnchecked sets the count of element i to amount.
//
// i must be in [0, N). Otherwise the behavior is undefined.
func (m *Multiset[T, S]) InsertUnchecked(i int, amount T) {
	*m.at(i) = amount
}

// Remove sets the count of element i to zero. It does nothing when i is
// out of range.
func (m *Multiset[T, S]) Remove(i int) {
	if i < 0 || i >= len(m.data) {
		return
	}
	*m.at(i) = 0
}

// RemoveUnchecked sets the count of element i to zero.
//
// i must be in [0, N). Otherwise the behavior is undefined.
func (m *Multiset[T, S]) RemoveUnchecked(i int) {
	*m.at(i) = 0
}

// String formats the counters like a slice, e.g. "[1 2 0 0]".
func (m *Multiset[T, S]) String() string {
	return fmt.Sprint(m.counts())
}

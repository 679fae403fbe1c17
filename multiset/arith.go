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

// AddAssign sets m[i] += other[i] for every element, wrapping on overflow.
func (m *Multiset[T, S]) AddAssign(other *Multiset[T, S]) {
	algo.AddAssign(m.counts(), other.counts(), lanesFor[T]())
}

// SubAssign sets m[i] -= other[i] for every element, wrapping on underflow.
func (m *Multiset[T, S]) SubAssign(other *Multiset[T, S]) {
	algo.SubAssign(m.counts(), other.counts(), lanesFor[T]())
}

// MulAssign sets m[i] *= other[i] for every element, wrapping on overflow.
func (m *Multiset[T, S]) MulAssign(other *Multiset[T, S]) {
	algo.MulAssign(m.counts(), other.counts(), lanesFor[T]())
}

// DivAssign sets m[i] /= other[i] for every element. Where other[i] is
// zero, m[i] becomes zero.
func (m *Multiset[T, S]) DivAssign(other *Multiset[T, S]) {
	algo.DivAssign(m.counts(), other.counts(), lanesFor[T]())
}

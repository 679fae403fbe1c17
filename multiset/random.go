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

// Rand is a source of uniformly distributed integers. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// Uint64N returns a value in [0, n). n is never zero.
	Uint64N(n uint64) uint64
}

// Choose zeroes every counter except the one of element i. When i is out
// of range every counter is zeroed.
func (m *Multiset[T, S]) Choose(i int) {
	c := m.counts()
	for j := range c {
		if j != i {
			c[j] = 0
		}
	}
}

// ChooseRandom keeps a single element, picked with probability
// proportional to its count, and zeroes every other counter. The kept
// counter is unchanged. Elements with a zero count are never picked.
//
// An all-zero multiset stays all-zero and r is not called. The running
// total is accumulated in uint64.
func (m *Multiset[T, S]) ChooseRandom(r Rand) {
	c := m.counts()
	var total uint64
	for _, v := range c {
		total += uint64(v)
	}
	if total == 0 {
		return
	}

	threshold := 1 + r.Uint64N(total)
	var acc uint64
	chosen := false
	for i, v := range c {
		if !chosen {
			acc += uint64(v)
			if acc >= threshold {
				chosen = true
				continue
			}
		}
		c[i] = 0
	}
}

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

import "math"

// CollisionEntropy returns the Rényi entropy of order 2 in bits,
// -log2(sum(p_i^2)) with p_i = m[i] / total. It returns 0 for an empty
// multiset.
//
// The total is accumulated in float64, so it does not wrap like Total.
func CollisionEntropy[T EntropyCounter, S Storage[T]](m *Multiset[T, S]) float64 {
	total := floatTotal(m)
	if total == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.counts() {
		p := float64(v) / total
		sum += p * p
	}
	// Subtract rather than negate so a singleton yields +0, not -0.
	return 0 - math.Log2(sum)
}

// ShannonEntropy returns -sum(p_i * ln(p_i)) in nats over the elements with
// a non-zero count. It returns 0 for an empty multiset.
func ShannonEntropy[T EntropyCounter, S Storage[T]](m *Multiset[T, S]) float64 {
	total := floatTotal(m)
	if total == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.counts() {
		if v == 0 {
			continue
		}
		p := float64(v) / total
		sum -= p * math.Log(p)
	}
	return sum
}

func floatTotal[T EntropyCounter, S Storage[T]](m *Multiset[T, S]) float64 {
	var total float64
	for _, v := range m.counts() {
		total += float64(v)
	}
	return total
}

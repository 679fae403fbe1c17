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

package hwy

import "math/bits"

// CountTrue counts true lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return bits.OnesCount64(mask.bits)
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// MaskAnd performs bitwise AND on two masks. The result has as many lanes
// as the narrower operand.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & laneBits(n), n: n}
}

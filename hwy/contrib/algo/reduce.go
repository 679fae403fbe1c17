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

package algo

import "github.com/ajroetker/go-multiset/hwy"

// Sum returns the sum of all elements. The sum wraps modulo 2^bits, so the
// lane and scalar realizations agree even when it overflows.
func Sum[T hwy.Lanes](a []T, lanes int) T {
	if lanes <= 1 {
		var sum T
		for _, v := range a {
			sum += v
		}
		return sum
	}
	if len(a) > 0 {
		if sum, ok := nativeReduce(reduceSum, a); ok {
			return sum
		}
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	acc := hwy.ZeroN[T](lanes)
	hwy.ProcessWithTailN(len(a), lanes,
		func(offset int) {
			acc = hwy.Add(acc, hwy.LoadN(a[offset:offset+lanes], lanes))
		},
		func(offset, count int) {
			acc = hwy.Add(acc, hwy.LoadN(a[offset:offset+count], lanes))
		},
	)
	return hwy.ReduceSum(acc)
}

// CountNonZero returns the number of non-zero elements.
//
// Each element is clamped to {0, 1} before it is accumulated, so the count
// is bounded by len(a) and never overflows T within a block.
func CountNonZero[T hwy.Lanes](a []T, lanes int) int {
	if lanes <= 1 {
		count := 0
		for _, v := range a {
			count += int(min(v, 1))
		}
		return count
	}
	if count, ok := nativeCountNonZero(a); ok {
		return count
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	one := hwy.SetN[T](1, lanes)
	count := 0
	hwy.ProcessWithTailN(len(a), lanes,
		func(offset int) {
			v := hwy.LoadN(a[offset:offset+lanes], lanes)
			count += int(hwy.ReduceSum(hwy.Min(v, one)))
		},
		func(offset, n int) {
			v := hwy.LoadN(a[offset:offset+n], lanes)
			count += int(hwy.ReduceSum(hwy.Min(v, one)))
		},
	)
	return count
}

// AllZero returns true if every element is zero.
func AllZero[T hwy.Lanes](a []T, lanes int) bool {
	if lanes <= 1 {
		for _, v := range a {
			if v != 0 {
				return false
			}
		}
		return true
	}
	if none, ok := nativeTest(testBothZero, a, a); ok {
		return none
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	zero := hwy.ZeroN[T](lanes)
	for i := 0; i < len(a); i += lanes {
		end := min(i+lanes, len(a))
		if hwy.NotEqual(hwy.LoadN(a[i:end], lanes), zero).AnyTrue() {
			return false
		}
	}
	return true
}

// Max returns the largest element, or zero for empty input.
func Max[T hwy.Lanes](a []T, lanes int) T {
	_, m := ArgMax(a, lanes)
	return m
}

// Min returns the smallest element, or zero for empty input.
func Min[T hwy.Lanes](a []T, lanes int) T {
	_, m := ArgMin(a, lanes)
	return m
}

// ArgMax returns the index and value of the first occurrence of the largest
// element. The running maximum is only replaced on a strict improvement, so
// ties keep the earliest index. Empty input returns (-1, 0).
func ArgMax[T hwy.Lanes](a []T, lanes int) (int, T) {
	if len(a) == 0 {
		return -1, 0
	}
	best, idx := a[0], 0
	if lanes <= 1 {
		for i := 1; i < len(a); i++ {
			if a[i] > best {
				best, idx = a[i], i
			}
		}
		return idx, best
	}
	if m, ok := nativeReduce(reduceMax, a); ok {
		return firstIndex(a, m), m
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	// Zero padding cannot win: a block only replaces best when its maximum
	// is strictly greater than best >= 0.
	for i := 0; i < len(a); i += lanes {
		end := min(i+lanes, len(a))
		v := hwy.LoadN(a[i:end], lanes)
		if m := hwy.ReduceMax(v); m > best {
			best = m
			idx = i + hwy.FindFirstTrue(hwy.Equal(v, hwy.SetN(m, lanes)))
		}
	}
	return idx, best
}

// ArgMin returns the index and value of the first occurrence of the
// smallest element. Ties keep the earliest index. Empty input returns (-1, 0).
func ArgMin[T hwy.Lanes](a []T, lanes int) (int, T) {
	if len(a) == 0 {
		return -1, 0
	}
	best, idx := a[0], 0
	if lanes <= 1 {
		for i := 1; i < len(a); i++ {
			if a[i] < best {
				best, idx = a[i], i
			}
		}
		return idx, best
	}
	if m, ok := nativeReduce(reduceMin, a); ok {
		return firstIndex(a, m), m
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	// Padding lanes are replaced by the largest T so they cannot be the minimum.
	ceiling := hwy.SetN(^T(0), lanes)
	for i := 0; i < len(a); i += lanes {
		end := min(i+lanes, len(a))
		v := hwy.LoadN(a[i:end], lanes)
		if end-i < lanes {
			v = hwy.IfThenElse(hwy.TailMaskN[T](end-i, lanes), v, ceiling)
		}
		if m := hwy.ReduceMin(v); m < best {
			best = m
			idx = i + hwy.FindFirstTrue(hwy.Equal(v, hwy.SetN(m, lanes)))
		}
	}
	return idx, best
}

// firstIndex returns the index of the first element equal to v, which the
// caller knows is present.
func firstIndex[T hwy.Lanes](a []T, v T) int {
	for i, x := range a {
		if x == v {
			return i
		}
	}
	return -1
}

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

// This file provides pure Go implementations of all lane operations.
// Vectors are fixed-size arrays, so none of these functions allocate.
// Binary operations run over the lanes active in both operands; lanes past
// that count stay zero.

// LoadN creates a vector of 'lanes' lanes from a slice. If src is shorter
// than lanes, the remaining lanes are zero.
func LoadN[T Lanes](src []T, lanes int) Vec[T] {
	v := Vec[T]{n: clampLanes(lanes)}
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// SetN creates a vector of 'lanes' lanes all set to value.
func SetN[T Lanes](value T, lanes int) Vec[T] {
	v := Vec[T]{n: clampLanes(lanes)}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// ZeroN creates a vector of 'lanes' zero lanes.
func ZeroN[T Lanes](lanes int) Vec[T] {
	return Vec[T]{n: clampLanes(lanes)}
}

// Add performs element-wise addition. Results wrap modulo 2^bits.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction. Results wrap modulo 2^bits.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication. Results wrap modulo 2^bits.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise integer division.
// A lane divided by zero yields zero, matching DivOrZero.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = DivOrZero(a.data[i], b.data[i])
	}
	return r
}

// DivOrZero returns a / b, or zero when b is zero.
func DivOrZero[T Lanes](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}

// Min performs element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max performs element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// ReduceSum sums all lanes. The sum wraps modulo 2^bits.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = min(m, v.data[i])
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if pred(a.data[i], b.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse performs conditional selection.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, mask.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), v.n, mask.n)
	for i := range n {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}

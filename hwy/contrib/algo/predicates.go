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

// Comparison defines a pairwise test that can run on scalars or vectors.
type Comparison[T hwy.Lanes] interface {
	// Test returns true if the pair (a, b) satisfies the comparison.
	// Used by the scalar realization.
	Test(a, b T) bool

	// Apply returns a mask indicating which lanes satisfy the comparison.
	// Used by the lane realization.
	Apply(a, b hwy.Vec[T]) hwy.Mask[T]
}

// LessEqual is satisfied when a <= b.
type LessEqual[T hwy.Lanes] struct{}

func (LessEqual[T]) Test(a, b T) bool { return a <= b }
func (LessEqual[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] { return hwy.LessEqual(a, b) }

// GreaterEqual is satisfied when a >= b.
type GreaterEqual[T hwy.Lanes] struct{}

func (GreaterEqual[T]) Test(a, b T) bool { return a >= b }
func (GreaterEqual[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] { return hwy.GreaterEqual(a, b) }

// Less is satisfied when a < b.
type Less[T hwy.Lanes] struct{}

func (Less[T]) Test(a, b T) bool { return a < b }
func (Less[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] { return hwy.LessThan(a, b) }

// Greater is satisfied when a > b.
type Greater[T hwy.Lanes] struct{}

func (Greater[T]) Test(a, b T) bool { return a > b }
func (Greater[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] { return hwy.GreaterThan(a, b) }

// Equal is satisfied when a == b.
type Equal[T hwy.Lanes] struct{}

func (Equal[T]) Test(a, b T) bool { return a == b }
func (Equal[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] { return hwy.Equal(a, b) }

// Overlaps is satisfied when min(a, b) > 0.
type Overlaps[T hwy.Lanes] struct{}

func (Overlaps[T]) Test(a, b T) bool { return min(a, b) != 0 }
func (Overlaps[T]) Apply(a, b hwy.Vec[T]) hwy.Mask[T] {
	m := hwy.Min(a, b)
	return hwy.NotEqual(m, hwy.ZeroN[T](m.NumLanes()))
}

// All returns true if cmp holds for every pair (a[i], b[i]).
// It is vacuously true for empty input.
func All[T hwy.Lanes, C Comparison[T]](a, b []T, cmp C, lanes int) bool {
	n := min(len(a), len(b))
	if lanes <= 1 {
		for i := range n {
			if !cmp.Test(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	if holds, ok := nativeAll(a[:n], b[:n], cmp); ok {
		return holds
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	i := 0
	for ; i+lanes <= n; i += lanes {
		m := cmp.Apply(hwy.LoadN(a[i:i+lanes], lanes), hwy.LoadN(b[i:i+lanes], lanes))
		if !m.AllTrue() {
			return false
		}
	}

	// Padding lanes are outside the tail mask and cannot veto the result.
	if remaining := n - i; remaining > 0 {
		tail := hwy.TailMaskN[T](remaining, lanes)
		m := cmp.Apply(hwy.LoadN(a[i:n], lanes), hwy.LoadN(b[i:n], lanes))
		if hwy.CountTrue(hwy.MaskAnd(m, tail)) != remaining {
			return false
		}
	}
	return true
}

// Any returns true if cmp holds for at least one pair (a[i], b[i]).
func Any[T hwy.Lanes, C Comparison[T]](a, b []T, cmp C, lanes int) bool {
	n := min(len(a), len(b))
	if lanes <= 1 {
		for i := range n {
			if cmp.Test(a[i], b[i]) {
				return true
			}
		}
		return false
	}
	if found, ok := nativeAny(a[:n], b[:n], cmp); ok {
		return found
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	i := 0
	for ; i+lanes <= n; i += lanes {
		m := cmp.Apply(hwy.LoadN(a[i:i+lanes], lanes), hwy.LoadN(b[i:i+lanes], lanes))
		if m.AnyTrue() {
			return true
		}
	}

	if remaining := n - i; remaining > 0 {
		tail := hwy.TailMaskN[T](remaining, lanes)
		m := cmp.Apply(hwy.LoadN(a[i:n], lanes), hwy.LoadN(b[i:n], lanes))
		return hwy.MaskAnd(m, tail).AnyTrue()
	}
	return false
}

// Intersects returns true if min(a[i], b[i]) is non-zero for some i.
// This is the overflow-free form of "the sum of pointwise minimums is
// non-zero".
func Intersects[T hwy.Lanes](a, b []T, lanes int) bool {
	return Any(a, b, Overlaps[T]{}, lanes)
}

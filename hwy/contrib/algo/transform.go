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

// VecFunc combines two vectors lane by lane.
type VecFunc[T hwy.Lanes] func(a, b hwy.Vec[T]) hwy.Vec[T]

// ScalarFunc combines two scalars. It must agree with the matching VecFunc
// on every lane.
type ScalarFunc[T hwy.Lanes] func(a, b T) T

// TransformAssign sets dst[i] = scalarFunc(dst[i], src[i]) for every i in
// range of both slices, using vecFunc on blocks of 'lanes' elements when
// lanes > 1.
//
// The final partial block is loaded zero-padded and written back through
// a tail mask, so padding lanes are computed but never stored.
func TransformAssign[T hwy.Lanes](dst, src []T, vecFunc VecFunc[T], scalarFunc ScalarFunc[T], lanes int) {
	n := min(len(dst), len(src))
	if lanes <= 1 {
		for i := range n {
			dst[i] = scalarFunc(dst[i], src[i])
		}
		return
	}
	lanes = min(lanes, hwy.MaxVecLanes)

	hwy.ProcessWithTailN(n, lanes,
		func(offset int) {
			a := hwy.LoadN(dst[offset:offset+lanes], lanes)
			b := hwy.LoadN(src[offset:offset+lanes], lanes)
			hwy.Store(vecFunc(a, b), dst[offset:offset+lanes])
		},
		func(offset, count int) {
			a := hwy.LoadN(dst[offset:offset+count], lanes)
			b := hwy.LoadN(src[offset:offset+count], lanes)
			hwy.MaskStore(hwy.TailMaskN[T](count, lanes), vecFunc(a, b), dst[offset:])
		},
	)
}

// zip runs a native kernel for op when lanes > 1 and one is installed for
// T's width, and otherwise falls back to TransformAssign.
func zip[T hwy.Lanes](op zipOp, dst, src []T, vecFunc VecFunc[T], scalarFunc ScalarFunc[T], lanes int) {
	if lanes > 1 && nativeZip(op, dst, src) {
		return
	}
	TransformAssign(dst, src, vecFunc, scalarFunc, lanes)
}

// AddAssign sets dst[i] += src[i], wrapping on overflow.
func AddAssign[T hwy.Lanes](dst, src []T, lanes int) {
	zip(opAdd, dst, src, hwy.Add[T], add[T], lanes)
}

// SubAssign sets dst[i] -= src[i], wrapping on underflow.
func SubAssign[T hwy.Lanes](dst, src []T, lanes int) {
	zip(opSub, dst, src, hwy.Sub[T], sub[T], lanes)
}

// MulAssign sets dst[i] *= src[i], wrapping on overflow.
func MulAssign[T hwy.Lanes](dst, src []T, lanes int) {
	TransformAssign(dst, src, hwy.Mul[T], func(a, b T) T { return a * b }, lanes)
}

// DivAssign sets dst[i] /= src[i]. A zero divisor sets dst[i] to zero.
func DivAssign[T hwy.Lanes](dst, src []T, lanes int) {
	TransformAssign(dst, src, hwy.Div[T], hwy.DivOrZero[T], lanes)
}

// MinAssign sets dst[i] = min(dst[i], src[i]).
func MinAssign[T hwy.Lanes](dst, src []T, lanes int) {
	zip(opMin, dst, src, hwy.Min[T], minimum[T], lanes)
}

// MaxAssign sets dst[i] = max(dst[i], src[i]).
func MaxAssign[T hwy.Lanes](dst, src []T, lanes int) {
	zip(opMax, dst, src, hwy.Max[T], maximum[T], lanes)
}

func add[T hwy.Lanes](a, b T) T     { return a + b }
func sub[T hwy.Lanes](a, b T) T     { return a - b }
func minimum[T hwy.Lanes](a, b T) T { return min(a, b) }
func maximum[T hwy.Lanes](a, b T) T { return max(a, b) }

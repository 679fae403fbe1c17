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

// Package hwy provides portable, allocation-free lane operations over
// unsigned integer counters with runtime CPU dispatch.
//
// A Vec holds up to MaxVecLanes values in a fixed array, so vectors live on
// the stack. The number of active lanes is chosen per call (see LoadN) or
// derived from the dispatched SIMD width (see MaxLanes). On amd64 builds with
// GOEXPERIMENT=simd, AVX2 helpers over simd/archsimd vectors are compiled in
// as well and CurrentLevel reports DispatchAVX2 when the CPU supports them.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-multiset/hwy"
//
//	lanes := hwy.MaxLanes[uint32]()
//	a := hwy.LoadN(counts1, lanes)
//	b := hwy.LoadN(counts2, lanes)
//	hwy.Store(hwy.Min(a, b), out)
package hwy

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	UnsignedInts
}

// MaxVecLanes is the capacity of a Vec: 512 bits of uint8.
const MaxVecLanes = 64

// Vec is a portable vector handle.
// Lanes at index >= NumLanes() are always zero. Vec instances should not be
// created directly; use LoadN, SetN or ZeroN instead.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Mask represents the result of a comparison operation.
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan, or TailMaskN.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits uint64
	n    int
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// laneBits returns a bit pattern with the low n bits set.
func laneBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}

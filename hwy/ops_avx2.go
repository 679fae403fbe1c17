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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// This file contains AVX2 helpers over raw archsimd vectors. They are used
// by the slice kernels in contrib/algo and are only valid to call when
// CurrentLevel() == DispatchAVX2.

// Min_AVX2_Uint64x4 returns the element-wise minimum of two Uint64x4 vectors.
// AVX2 doesn't have VPMINUQ (unsigned 64-bit min), so lanes are compared in
// scalar registers.
func Min_AVX2_Uint64x4(a, b archsimd.Uint64x4) archsimd.Uint64x4 {
	var x, y [4]uint64
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	for i := range x {
		x[i] = min(x[i], y[i])
	}
	return archsimd.LoadUint64x4Slice(x[:])
}

// Max_AVX2_Uint64x4 returns the element-wise maximum of two Uint64x4 vectors.
// AVX2 doesn't have VPMAXUQ either.
func Max_AVX2_Uint64x4(a, b archsimd.Uint64x4) archsimd.Uint64x4 {
	var x, y [4]uint64
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	for i := range x {
		x[i] = max(x[i], y[i])
	}
	return archsimd.LoadUint64x4Slice(x[:])
}

// ReduceSum_AVX2_Uint8x32 returns the sum of all lanes, wrapping modulo 2^8.
func ReduceSum_AVX2_Uint8x32(v archsimd.Uint8x32) uint8 {
	var l [32]uint8
	v.StoreSlice(l[:])
	return sumLanes(l[:])
}

// ReduceSum_AVX2_Uint16x16 returns the sum of all lanes, wrapping modulo 2^16.
func ReduceSum_AVX2_Uint16x16(v archsimd.Uint16x16) uint16 {
	var l [16]uint16
	v.StoreSlice(l[:])
	return sumLanes(l[:])
}

// ReduceSum_AVX2_Uint32x8 returns the sum of all lanes, wrapping modulo 2^32.
func ReduceSum_AVX2_Uint32x8(v archsimd.Uint32x8) uint32 {
	l := lanesUint32x4(v.GetLo().Add(v.GetHi()))
	return sumLanes(l[:])
}

// ReduceSum_AVX2_Uint64x4 returns the sum of all lanes, wrapping modulo 2^64.
func ReduceSum_AVX2_Uint64x4(v archsimd.Uint64x4) uint64 {
	s := v.GetLo().Add(v.GetHi())
	return s.GetElem(0) + s.GetElem(1)
}

// ReduceMax_AVX2_Uint8x32 returns the maximum element in the vector.
func ReduceMax_AVX2_Uint8x32(v archsimd.Uint8x32) uint8 {
	var l [16]uint8
	v.GetLo().Max(v.GetHi()).StoreSlice(l[:])
	return maxLanes(l[:])
}

// ReduceMax_AVX2_Uint16x16 returns the maximum element in the vector.
func ReduceMax_AVX2_Uint16x16(v archsimd.Uint16x16) uint16 {
	var l [8]uint16
	v.GetLo().Max(v.GetHi()).StoreSlice(l[:])
	return maxLanes(l[:])
}

// ReduceMax_AVX2_Uint32x8 returns the maximum element in the vector.
func ReduceMax_AVX2_Uint32x8(v archsimd.Uint32x8) uint32 {
	// Reduce 8 -> 4 in vector registers, then 4 -> 1.
	l := lanesUint32x4(v.GetLo().Max(v.GetHi()))
	return maxLanes(l[:])
}

// ReduceMax_AVX2_Uint64x4 returns the maximum element in the vector.
func ReduceMax_AVX2_Uint64x4(v archsimd.Uint64x4) uint64 {
	var l [4]uint64
	v.StoreSlice(l[:])
	return maxLanes(l[:])
}

// ReduceMin_AVX2_Uint8x32 returns the minimum element in the vector.
func ReduceMin_AVX2_Uint8x32(v archsimd.Uint8x32) uint8 {
	var l [16]uint8
	v.GetLo().Min(v.GetHi()).StoreSlice(l[:])
	return minLanes(l[:])
}

// ReduceMin_AVX2_Uint16x16 returns the minimum element in the vector.
func ReduceMin_AVX2_Uint16x16(v archsimd.Uint16x16) uint16 {
	var l [8]uint16
	v.GetLo().Min(v.GetHi()).StoreSlice(l[:])
	return minLanes(l[:])
}

// ReduceMin_AVX2_Uint32x8 returns the minimum element in the vector.
func ReduceMin_AVX2_Uint32x8(v archsimd.Uint32x8) uint32 {
	l := lanesUint32x4(v.GetLo().Min(v.GetHi()))
	return minLanes(l[:])
}

// ReduceMin_AVX2_Uint64x4 returns the minimum element in the vector.
func ReduceMin_AVX2_Uint64x4(v archsimd.Uint64x4) uint64 {
	var l [4]uint64
	v.StoreSlice(l[:])
	return minLanes(l[:])
}

// AllZero_AVX2_Uint8x32 returns true if every lane is zero.
func AllZero_AVX2_Uint8x32(v archsimd.Uint8x32) bool {
	var l [32]uint8
	v.StoreSlice(l[:])
	return maxLanes(l[:]) == 0
}

// AllZero_AVX2_Uint16x16 returns true if every lane is zero.
func AllZero_AVX2_Uint16x16(v archsimd.Uint16x16) bool {
	var l [16]uint16
	v.StoreSlice(l[:])
	return maxLanes(l[:]) == 0
}

// AllZero_AVX2_Uint32x8 returns true if every lane is zero.
func AllZero_AVX2_Uint32x8(v archsimd.Uint32x8) bool {
	l := lanesUint32x4(v.GetLo().Or(v.GetHi()))
	return l[0]|l[1]|l[2]|l[3] == 0
}

// AllZero_AVX2_Uint64x4 returns true if every lane is zero.
func AllZero_AVX2_Uint64x4(v archsimd.Uint64x4) bool {
	s := v.GetLo().Or(v.GetHi())
	return s.GetElem(0)|s.GetElem(1) == 0
}

func lanesUint32x4(v archsimd.Uint32x4) [4]uint32 {
	return [4]uint32{v.GetElem(0), v.GetElem(1), v.GetElem(2), v.GetElem(3)}
}

func sumLanes[T Lanes](l []T) T {
	var s T
	for _, x := range l {
		s += x
	}
	return s
}

func maxLanes[T Lanes](l []T) T {
	m := l[0]
	for _, x := range l[1:] {
		m = max(m, x)
	}
	return m
}

func minLanes[T Lanes](l []T) T {
	m := l[0]
	for _, x := range l[1:] {
		m = min(m, x)
	}
	return m
}

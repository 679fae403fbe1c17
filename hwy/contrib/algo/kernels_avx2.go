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

package algo

import (
	"simd/archsimd"

	"github.com/ajroetker/go-multiset/hwy"
)

// flushBlocks bounds how many blocks of 0/1 lanes are summed before the
// accumulator is widened, so a uint8 lane never wraps.
const flushBlocks = 255

func init() {
	if hwy.CurrentLevel() != hwy.DispatchAVX2 {
		return
	}
	install8()
	install16()
	install32()
	install64()
}

func install8() {
	native8 = nativeKernels[uint8]{
		zip: [numZipOps]func(dst, src []uint8){
			opAdd: zip8(archsimd.Uint8x32.Add, add[uint8]),
			opSub: zip8(archsimd.Uint8x32.Sub, sub[uint8]),
			opMin: zip8(archsimd.Uint8x32.Min, minimum[uint8]),
			opMax: zip8(archsimd.Uint8x32.Max, maximum[uint8]),
		},
		test: [numTestOps]func(a, b []uint8) bool{
			testLessEqual: holds8(func(x, y archsimd.Uint8x32) archsimd.Uint8x32 {
				return x.Min(y).Xor(x)
			}, LessEqual[uint8]{}.Test),
			testGreaterEqual: holds8(func(x, y archsimd.Uint8x32) archsimd.Uint8x32 {
				return x.Max(y).Xor(x)
			}, GreaterEqual[uint8]{}.Test),
			testEqual:    holds8(archsimd.Uint8x32.Xor, Equal[uint8]{}.Test),
			testDisjoint: holds8(archsimd.Uint8x32.Min, disjoint[uint8]),
			testBothZero: holds8(archsimd.Uint8x32.Or, bothZero[uint8]),
		},
		reduce: [numReduceOps]func(a []uint8) uint8{
			reduceSum: reduce8(0, archsimd.Uint8x32.Add, hwy.ReduceSum_AVX2_Uint8x32, add[uint8]),
			reduceMax: reduce8(0, archsimd.Uint8x32.Max, hwy.ReduceMax_AVX2_Uint8x32, maximum[uint8]),
			reduceMin: reduce8(^uint8(0), archsimd.Uint8x32.Min, hwy.ReduceMin_AVX2_Uint8x32, minimum[uint8]),
		},
		countNonZero: countNonZero8,
	}
}

func zip8(vec func(a, b archsimd.Uint8x32) archsimd.Uint8x32, scalar func(a, b uint8) uint8) func(dst, src []uint8) {
	return func(dst, src []uint8) {
		i := 0
		for ; i+32 <= len(dst); i += 32 {
			a := archsimd.LoadUint8x32Slice(dst[i:])
			vec(a, archsimd.LoadUint8x32Slice(src[i:])).StoreSlice(dst[i:])
		}
		for ; i < len(dst); i++ {
			dst[i] = scalar(dst[i], src[i])
		}
	}
}

func holds8(violation func(x, y archsimd.Uint8x32) archsimd.Uint8x32, scalar func(a, b uint8) bool) func(a, b []uint8) bool {
	return func(a, b []uint8) bool {
		acc := archsimd.BroadcastUint8x32(0)
		i := 0
		for ; i+32 <= len(a); i += 32 {
			acc = acc.Or(violation(archsimd.LoadUint8x32Slice(a[i:]), archsimd.LoadUint8x32Slice(b[i:])))
		}
		if !hwy.AllZero_AVX2_Uint8x32(acc) {
			return false
		}
		for ; i < len(a); i++ {
			if !scalar(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}

func reduce8(init uint8, step func(acc, x archsimd.Uint8x32) archsimd.Uint8x32, fold func(v archsimd.Uint8x32) uint8, scalar func(a, b uint8) uint8) func(a []uint8) uint8 {
	return func(a []uint8) uint8 {
		acc := archsimd.BroadcastUint8x32(init)
		i := 0
		for ; i+32 <= len(a); i += 32 {
			acc = step(acc, archsimd.LoadUint8x32Slice(a[i:]))
		}
		r := fold(acc)
		for ; i < len(a); i++ {
			r = scalar(r, a[i])
		}
		return r
	}
}

func countNonZero8(a []uint8) int {
	one := archsimd.BroadcastUint8x32(1)
	count, i := 0, 0
	for i+32 <= len(a) {
		acc := archsimd.BroadcastUint8x32(0)
		for blocks := 0; blocks < flushBlocks && i+32 <= len(a); blocks++ {
			acc = acc.Add(archsimd.LoadUint8x32Slice(a[i:]).Min(one))
			i += 32
		}
		var l [32]uint8
		acc.StoreSlice(l[:])
		count += widenSum(l[:])
	}
	for ; i < len(a); i++ {
		count += int(min(a[i], 1))
	}
	return count
}

func install16() {
	native16 = nativeKernels[uint16]{
		zip: [numZipOps]func(dst, src []uint16){
			opAdd: zip16(archsimd.Uint16x16.Add, add[uint16]),
			opSub: zip16(archsimd.Uint16x16.Sub, sub[uint16]),
			opMin: zip16(archsimd.Uint16x16.Min, minimum[uint16]),
			opMax: zip16(archsimd.Uint16x16.Max, maximum[uint16]),
		},
		test: [numTestOps]func(a, b []uint16) bool{
			testLessEqual: holds16(func(x, y archsimd.Uint16x16) archsimd.Uint16x16 {
				return x.Min(y).Xor(x)
			}, LessEqual[uint16]{}.Test),
			testGreaterEqual: holds16(func(x, y archsimd.Uint16x16) archsimd.Uint16x16 {
				return x.Max(y).Xor(x)
			}, GreaterEqual[uint16]{}.Test),
			testEqual:    holds16(archsimd.Uint16x16.Xor, Equal[uint16]{}.Test),
			testDisjoint: holds16(archsimd.Uint16x16.Min, disjoint[uint16]),
			testBothZero: holds16(archsimd.Uint16x16.Or, bothZero[uint16]),
		},
		reduce: [numReduceOps]func(a []uint16) uint16{
			reduceSum: reduce16(0, archsimd.Uint16x16.Add, hwy.ReduceSum_AVX2_Uint16x16, add[uint16]),
			reduceMax: reduce16(0, archsimd.Uint16x16.Max, hwy.ReduceMax_AVX2_Uint16x16, maximum[uint16]),
			reduceMin: reduce16(^uint16(0), archsimd.Uint16x16.Min, hwy.ReduceMin_AVX2_Uint16x16, minimum[uint16]),
		},
		countNonZero: countNonZero16,
	}
}

func zip16(vec func(a, b archsimd.Uint16x16) archsimd.Uint16x16, scalar func(a, b uint16) uint16) func(dst, src []uint16) {
	return func(dst, src []uint16) {
		i := 0
		for ; i+16 <= len(dst); i += 16 {
			a := archsimd.LoadUint16x16Slice(dst[i:])
			vec(a, archsimd.LoadUint16x16Slice(src[i:])).StoreSlice(dst[i:])
		}
		for ; i < len(dst); i++ {
			dst[i] = scalar(dst[i], src[i])
		}
	}
}

func holds16(violation func(x, y archsimd.Uint16x16) archsimd.Uint16x16, scalar func(a, b uint16) bool) func(a, b []uint16) bool {
	return func(a, b []uint16) bool {
		acc := archsimd.BroadcastUint16x16(0)
		i := 0
		for ; i+16 <= len(a); i += 16 {
			acc = acc.Or(violation(archsimd.LoadUint16x16Slice(a[i:]), archsimd.LoadUint16x16Slice(b[i:])))
		}
		if !hwy.AllZero_AVX2_Uint16x16(acc) {
			return false
		}
		for ; i < len(a); i++ {
			if !scalar(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}

func reduce16(init uint16, step func(acc, x archsimd.Uint16x16) archsimd.Uint16x16, fold func(v archsimd.Uint16x16) uint16, scalar func(a, b uint16) uint16) func(a []uint16) uint16 {
	return func(a []uint16) uint16 {
		acc := archsimd.BroadcastUint16x16(init)
		i := 0
		for ; i+16 <= len(a); i += 16 {
			acc = step(acc, archsimd.LoadUint16x16Slice(a[i:]))
		}
		r := fold(acc)
		for ; i < len(a); i++ {
			r = scalar(r, a[i])
		}
		return r
	}
}

func countNonZero16(a []uint16) int {
	one := archsimd.BroadcastUint16x16(1)
	count, i := 0, 0
	for i+16 <= len(a) {
		acc := archsimd.BroadcastUint16x16(0)
		for blocks := 0; blocks < flushBlocks && i+16 <= len(a); blocks++ {
			acc = acc.Add(archsimd.LoadUint16x16Slice(a[i:]).Min(one))
			i += 16
		}
		var l [16]uint16
		acc.StoreSlice(l[:])
		count += widenSum(l[:])
	}
	for ; i < len(a); i++ {
		count += int(min(a[i], 1))
	}
	return count
}

func install32() {
	native32 = nativeKernels[uint32]{
		zip: [numZipOps]func(dst, src []uint32){
			opAdd: zip32(archsimd.Uint32x8.Add, add[uint32]),
			opSub: zip32(archsimd.Uint32x8.Sub, sub[uint32]),
			opMin: zip32(archsimd.Uint32x8.Min, minimum[uint32]),
			opMax: zip32(archsimd.Uint32x8.Max, maximum[uint32]),
		},
		test: [numTestOps]func(a, b []uint32) bool{
			testLessEqual: holds32(func(x, y archsimd.Uint32x8) archsimd.Uint32x8 {
				return x.Min(y).Xor(x)
			}, LessEqual[uint32]{}.Test),
			testGreaterEqual: holds32(func(x, y archsimd.Uint32x8) archsimd.Uint32x8 {
				return x.Max(y).Xor(x)
			}, GreaterEqual[uint32]{}.Test),
			testEqual:    holds32(archsimd.Uint32x8.Xor, Equal[uint32]{}.Test),
			testDisjoint: holds32(archsimd.Uint32x8.Min, disjoint[uint32]),
			testBothZero: holds32(archsimd.Uint32x8.Or, bothZero[uint32]),
		},
		reduce: [numReduceOps]func(a []uint32) uint32{
			reduceSum: reduce32(0, archsimd.Uint32x8.Add, hwy.ReduceSum_AVX2_Uint32x8, add[uint32]),
			reduceMax: reduce32(0, archsimd.Uint32x8.Max, hwy.ReduceMax_AVX2_Uint32x8, maximum[uint32]),
			reduceMin: reduce32(^uint32(0), archsimd.Uint32x8.Min, hwy.ReduceMin_AVX2_Uint32x8, minimum[uint32]),
		},
		countNonZero: countNonZero32,
	}
}

func zip32(vec func(a, b archsimd.Uint32x8) archsimd.Uint32x8, scalar func(a, b uint32) uint32) func(dst, src []uint32) {
	return func(dst, src []uint32) {
		i := 0
		for ; i+8 <= len(dst); i += 8 {
			a := archsimd.LoadUint32x8Slice(dst[i:])
			vec(a, archsimd.LoadUint32x8Slice(src[i:])).StoreSlice(dst[i:])
		}
		for ; i < len(dst); i++ {
			dst[i] = scalar(dst[i], src[i])
		}
	}
}

func holds32(violation func(x, y archsimd.Uint32x8) archsimd.Uint32x8, scalar func(a, b uint32) bool) func(a, b []uint32) bool {
	return func(a, b []uint32) bool {
		acc := archsimd.BroadcastUint32x8(0)
		i := 0
		for ; i+8 <= len(a); i += 8 {
			acc = acc.Or(violation(archsimd.LoadUint32x8Slice(a[i:]), archsimd.LoadUint32x8Slice(b[i:])))
		}
		if !hwy.AllZero_AVX2_Uint32x8(acc) {
			return false
		}
		for ; i < len(a); i++ {
			if !scalar(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}

func reduce32(init uint32, step func(acc, x archsimd.Uint32x8) archsimd.Uint32x8, fold func(v archsimd.Uint32x8) uint32, scalar func(a, b uint32) uint32) func(a []uint32) uint32 {
	return func(a []uint32) uint32 {
		acc := archsimd.BroadcastUint32x8(init)
		i := 0
		for ; i+8 <= len(a); i += 8 {
			acc = step(acc, archsimd.LoadUint32x8Slice(a[i:]))
		}
		r := fold(acc)
		for ; i < len(a); i++ {
			r = scalar(r, a[i])
		}
		return r
	}
}

func countNonZero32(a []uint32) int {
	one := archsimd.BroadcastUint32x8(1)
	count, i := 0, 0
	for i+8 <= len(a) {
		acc := archsimd.BroadcastUint32x8(0)
		for blocks := 0; blocks < flushBlocks && i+8 <= len(a); blocks++ {
			acc = acc.Add(archsimd.LoadUint32x8Slice(a[i:]).Min(one))
			i += 8
		}
		var l [8]uint32
		acc.StoreSlice(l[:])
		count += widenSum(l[:])
	}
	for ; i < len(a); i++ {
		count += int(min(a[i], 1))
	}
	return count
}

func install64() {
	native64 = nativeKernels[uint64]{
		zip: [numZipOps]func(dst, src []uint64){
			opAdd: zip64(archsimd.Uint64x4.Add, add[uint64]),
			opSub: zip64(archsimd.Uint64x4.Sub, sub[uint64]),
			opMin: zip64(hwy.Min_AVX2_Uint64x4, minimum[uint64]),
			opMax: zip64(hwy.Max_AVX2_Uint64x4, maximum[uint64]),
		},
		test: [numTestOps]func(a, b []uint64) bool{
			testLessEqual: holds64(func(x, y archsimd.Uint64x4) archsimd.Uint64x4 {
				return hwy.Min_AVX2_Uint64x4(x, y).Xor(x)
			}, LessEqual[uint64]{}.Test),
			testGreaterEqual: holds64(func(x, y archsimd.Uint64x4) archsimd.Uint64x4 {
				return hwy.Max_AVX2_Uint64x4(x, y).Xor(x)
			}, GreaterEqual[uint64]{}.Test),
			testEqual:    holds64(archsimd.Uint64x4.Xor, Equal[uint64]{}.Test),
			testDisjoint: holds64(hwy.Min_AVX2_Uint64x4, disjoint[uint64]),
			testBothZero: holds64(archsimd.Uint64x4.Or, bothZero[uint64]),
		},
		reduce: [numReduceOps]func(a []uint64) uint64{
			reduceSum: reduce64(0, archsimd.Uint64x4.Add, hwy.ReduceSum_AVX2_Uint64x4, add[uint64]),
			reduceMax: reduce64(0, hwy.Max_AVX2_Uint64x4, hwy.ReduceMax_AVX2_Uint64x4, maximum[uint64]),
			reduceMin: reduce64(^uint64(0), hwy.Min_AVX2_Uint64x4, hwy.ReduceMin_AVX2_Uint64x4, minimum[uint64]),
		},
		countNonZero: countNonZero64,
	}
}

func zip64(vec func(a, b archsimd.Uint64x4) archsimd.Uint64x4, scalar func(a, b uint64) uint64) func(dst, src []uint64) {
	return func(dst, src []uint64) {
		i := 0
		for ; i+4 <= len(dst); i += 4 {
			a := archsimd.LoadUint64x4Slice(dst[i:])
			vec(a, archsimd.LoadUint64x4Slice(src[i:])).StoreSlice(dst[i:])
		}
		for ; i < len(dst); i++ {
			dst[i] = scalar(dst[i], src[i])
		}
	}
}

func holds64(violation func(x, y archsimd.Uint64x4) archsimd.Uint64x4, scalar func(a, b uint64) bool) func(a, b []uint64) bool {
	return func(a, b []uint64) bool {
		acc := archsimd.BroadcastUint64x4(0)
		i := 0
		for ; i+4 <= len(a); i += 4 {
			acc = acc.Or(violation(archsimd.LoadUint64x4Slice(a[i:]), archsimd.LoadUint64x4Slice(b[i:])))
		}
		if !hwy.AllZero_AVX2_Uint64x4(acc) {
			return false
		}
		for ; i < len(a); i++ {
			if !scalar(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}

func reduce64(init uint64, step func(acc, x archsimd.Uint64x4) archsimd.Uint64x4, fold func(v archsimd.Uint64x4) uint64, scalar func(a, b uint64) uint64) func(a []uint64) uint64 {
	return func(a []uint64) uint64 {
		acc := archsimd.BroadcastUint64x4(init)
		i := 0
		for ; i+4 <= len(a); i += 4 {
			acc = step(acc, archsimd.LoadUint64x4Slice(a[i:]))
		}
		r := fold(acc)
		for ; i < len(a); i++ {
			r = scalar(r, a[i])
		}
		return r
	}
}

func countNonZero64(a []uint64) int {
	one := archsimd.BroadcastUint64x4(1)
	count, i := 0, 0
	for i+4 <= len(a) {
		acc := archsimd.BroadcastUint64x4(0)
		for blocks := 0; blocks < flushBlocks && i+4 <= len(a); blocks++ {
			acc = acc.Add(hwy.Min_AVX2_Uint64x4(archsimd.LoadUint64x4Slice(a[i:]), one))
			i += 4
		}
		var l [4]uint64
		acc.StoreSlice(l[:])
		count += widenSum(l[:])
	}
	for ; i < len(a); i++ {
		count += int(min(a[i], 1))
	}
	return count
}

func disjoint[T hwy.Lanes](a, b T) bool { return min(a, b) == 0 }
func bothZero[T hwy.Lanes](a, b T) bool { return a|b == 0 }

func widenSum[E hwy.UnsignedInts](l []E) int {
	s := 0
	for _, x := range l {
		s += int(x)
	}
	return s
}

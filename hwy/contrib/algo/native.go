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

import (
	"unsafe"

	"github.com/ajroetker/go-multiset/hwy"
)

// Native kernels run a whole slice on hardware vectors. They are installed
// at init by kernels_avx2.go when hwy dispatches to AVX2, and the lane
// realization of each kernel prefers them over hwy.Vec blocks. A nil entry
// falls back to the portable blocks.

type zipOp int

const (
	opAdd zipOp = iota
	opSub
	opMin
	opMax
	numZipOps
)

// testOp names a pairwise predicate that must hold for every index.
type testOp int

const (
	testLessEqual    testOp = iota // a[i] <= b[i]
	testGreaterEqual               // a[i] >= b[i]
	testEqual                      // a[i] == b[i]
	testDisjoint                   // min(a[i], b[i]) == 0
	testBothZero                   // a[i] | b[i] == 0
	numTestOps
)

type reduceOp int

const (
	reduceSum reduceOp = iota
	reduceMax
	reduceMin
	numReduceOps
)

type nativeKernels[E hwy.UnsignedInts] struct {
	zip          [numZipOps]func(dst, src []E)
	test         [numTestOps]func(a, b []E) bool
	reduce       [numReduceOps]func(a []E) E
	countNonZero func(a []E) int
}

var (
	native8  nativeKernels[uint8]
	native16 nativeKernels[uint16]
	native32 nativeKernels[uint32]
	native64 nativeKernels[uint64]
)

// HasNativeKernels reports whether hardware vector kernels are installed.
func HasNativeKernels() bool {
	return native8.zip[opAdd] != nil
}

// view reinterprets s as a slice of the unsigned type with T's width.
func view[E, T hwy.Lanes](s []T) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func sizeOf[T hwy.Lanes]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// nativeZip runs dst[i] = op(dst[i], src[i]) and reports whether a native
// kernel was available.
func nativeZip[T hwy.Lanes](op zipOp, dst, src []T) bool {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	switch sizeOf[T]() {
	case 1:
		return runZip(native8.zip[op], view[uint8](dst), view[uint8](src))
	case 2:
		return runZip(native16.zip[op], view[uint16](dst), view[uint16](src))
	case 4:
		return runZip(native32.zip[op], view[uint32](dst), view[uint32](src))
	case 8:
		return runZip(native64.zip[op], view[uint64](dst), view[uint64](src))
	}
	return false
}

func runZip[E hwy.UnsignedInts](f func(dst, src []E), dst, src []E) bool {
	if f == nil {
		return false
	}
	f(dst, src)
	return true
}

// nativeTest evaluates op over the common prefix of a and b. The second
// result is false when no native kernel was available.
func nativeTest[T hwy.Lanes](op testOp, a, b []T) (holds, ok bool) {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	switch sizeOf[T]() {
	case 1:
		return runTest(native8.test[op], view[uint8](a), view[uint8](b))
	case 2:
		return runTest(native16.test[op], view[uint16](a), view[uint16](b))
	case 4:
		return runTest(native32.test[op], view[uint32](a), view[uint32](b))
	case 8:
		return runTest(native64.test[op], view[uint64](a), view[uint64](b))
	}
	return false, false
}

func runTest[E hwy.UnsignedInts](f func(a, b []E) bool, a, b []E) (bool, bool) {
	if f == nil {
		return false, false
	}
	return f(a, b), true
}

// nativeReduce folds a with op. a must not be empty.
func nativeReduce[T hwy.Lanes](op reduceOp, a []T) (T, bool) {
	switch sizeOf[T]() {
	case 1:
		return runReduce[T](native8.reduce[op], view[uint8](a))
	case 2:
		return runReduce[T](native16.reduce[op], view[uint16](a))
	case 4:
		return runReduce[T](native32.reduce[op], view[uint32](a))
	case 8:
		return runReduce[T](native64.reduce[op], view[uint64](a))
	}
	return 0, false
}

func runReduce[T hwy.Lanes, E hwy.UnsignedInts](f func(a []E) E, a []E) (T, bool) {
	if f == nil {
		return 0, false
	}
	return T(f(a)), true
}

func nativeCountNonZero[T hwy.Lanes](a []T) (int, bool) {
	switch sizeOf[T]() {
	case 1:
		return runCount(native8.countNonZero, view[uint8](a))
	case 2:
		return runCount(native16.countNonZero, view[uint16](a))
	case 4:
		return runCount(native32.countNonZero, view[uint32](a))
	case 8:
		return runCount(native64.countNonZero, view[uint64](a))
	}
	return 0, false
}

func runCount[E hwy.UnsignedInts](f func(a []E) int, a []E) (int, bool) {
	if f == nil {
		return 0, false
	}
	return f(a), true
}

// nativeAll maps the comparisons with a native "holds everywhere" kernel.
func nativeAll[T hwy.Lanes, C Comparison[T]](a, b []T, cmp C) (bool, bool) {
	switch any(cmp).(type) {
	case LessEqual[T]:
		return nativeTest(testLessEqual, a, b)
	case GreaterEqual[T]:
		return nativeTest(testGreaterEqual, a, b)
	case Equal[T]:
		return nativeTest(testEqual, a, b)
	}
	return false, false
}

// nativeAny rewrites "some pair satisfies cmp" as the negation of a
// predicate that must hold everywhere.
func nativeAny[T hwy.Lanes, C Comparison[T]](a, b []T, cmp C) (bool, bool) {
	var op testOp
	switch any(cmp).(type) {
	case Less[T]:
		op = testGreaterEqual
	case Greater[T]:
		op = testLessEqual
	case Overlaps[T]:
		op = testDisjoint
	default:
		return false, false
	}
	holds, ok := nativeTest(op, a, b)
	return !holds, ok
}

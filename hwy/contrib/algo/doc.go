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

// Package algo provides zero-allocation slice kernels over unsigned counters.
//
// Every kernel is written once and takes the lane width as its last
// argument. A width of 1 (or less) runs the scalar loop; a larger width
// processes blocks of that many lanes with hwy vectors and handles the
// remainder as one zero-padded block, masked with hwy.TailMaskN wherever a
// padding zero could change the answer (minimum searches and predicates).
// Both realizations return identical results for the same input.
//
// On amd64 builds with GOEXPERIMENT=simd, when hwy dispatches to AVX2, the
// lane realization of the Add, Sub, Min and Max kernels, the comparison
// predicates and the reductions runs native archsimd kernels over the whole
// slice instead of hwy.Vec blocks. HasNativeKernels reports whether they are
// installed.
//
// # Kernels
//
// Element-wise, in place on dst:
//   - AddAssign, SubAssign, MulAssign, DivAssign (division by zero yields 0)
//   - MinAssign, MaxAssign
//
// Pairwise predicates:
//   - All, Any with the LessEqual, GreaterEqual, Less, Greater and Equal comparisons
//   - Intersects (some pointwise minimum is non-zero)
//
// Reductions:
//   - Sum, CountNonZero, AllZero
//   - Min, Max, ArgMin, ArgMax (first occurrence wins ties)
//
// # Example Usage
//
//	import "github.com/ajroetker/go-multiset/hwy/contrib/algo"
//
//	lanes := hwy.MaxLanes[uint32]()
//	algo.MinAssign(dst, other, lanes)
//	total := algo.Sum(dst, lanes)
//	subset := algo.All(a, b, algo.LessEqual[uint32]{}, lanes)
package algo

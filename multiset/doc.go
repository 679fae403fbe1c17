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

// Package multiset provides fixed-capacity multisets of unsigned counters.
//
// A Multiset records one count per element of a finite domain {0, ..., N-1}.
// The domain size N is part of the type: the storage parameter S is an
// array type [N]T, so N is known at compile time, a Multiset is a plain
// value with no heap allocation, and mixing multisets of different sizes or
// counter widths does not compile.
//
//	type Hist = multiset.MSu8[[4]uint8]
//
//	a := multiset.FromSlice[uint8, [4]uint8]([]uint8{1, 2, 0, 0})
//	b := multiset.FromSlice[uint8, [4]uint8]([]uint8{0, 2, 3, 0})
//	both := a.Intersection(&b) // [0 2 0 0]
//	either := a.Union(&b)      // [1 2 3 0]
//
// # Realizations
//
// Every bulk operation runs on one of two realizations with identical
// results. The scalar realization loops over the counters one at a time.
// The lane realization runs the vector form of the kernels in package
// github.com/ajroetker/go-multiset/hwy/contrib/algo: native AVX2 kernels
// when they are installed, otherwise hwy.Vec blocks of hwy.MaxLanes[T]()
// counters with a zero-padded last block. It is the default only on amd64
// builds with GOEXPERIMENT=simd running on an AVX2 CPU. The purego build
// tag compiles it out and HWY_NO_SIMD=1 disables it; see ActiveBackend.
//
// # Checked and unchecked access
//
// Get, Contains, Insert and Remove check the index: out of range is an
// absent result or a no-op. Their Unchecked twins skip the bounds test
// entirely. Calling them with an index outside [0, N) reads or writes
// memory outside the multiset and is undefined behavior; use them only
// where the index is already known to be in range, such as a loop over
// 0 <= i < m.Len().
//
// # Overflow
//
// Counters use Go unsigned arithmetic. Total, AddAssign, SubAssign and
// MulAssign wrap modulo 2^bits. DivAssign by a zero counter yields zero.
// CountZero and CountNonZero return int and never overflow.
package multiset

//go:generate go run ../cmd/multisetgen -kind storage -pkg multiset -output storage_gen.go

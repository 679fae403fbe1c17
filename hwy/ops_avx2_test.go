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

import (
	"simd/archsimd"
	"testing"
)

func requireAVX2(t *testing.T) {
	t.Helper()
	if CurrentLevel() != DispatchAVX2 {
		t.Skipf("dispatch level is %s", CurrentName())
	}
}

func TestMinMaxAVX2Uint64x4(t *testing.T) {
	requireAVX2(t)
	a := archsimd.LoadUint64x4Slice([]uint64{1, 1 << 63, 7, 0})
	b := archsimd.LoadUint64x4Slice([]uint64{2, 5, 7, ^uint64(0)})

	var got [4]uint64
	Min_AVX2_Uint64x4(a, b).StoreSlice(got[:])
	if want := [4]uint64{1, 5, 7, 0}; got != want {
		t.Errorf("Min_AVX2_Uint64x4: got %v, want %v", got, want)
	}
	Max_AVX2_Uint64x4(a, b).StoreSlice(got[:])
	if want := [4]uint64{2, 1 << 63, 7, ^uint64(0)}; got != want {
		t.Errorf("Max_AVX2_Uint64x4: got %v, want %v", got, want)
	}
}

func TestReduceAVX2Uint8x32(t *testing.T) {
	requireAVX2(t)
	data := make([]uint8, 32)
	for i := range data {
		data[i] = uint8(10 + i)
	}
	data[17] = 200
	data[5] = 3
	v := archsimd.LoadUint8x32Slice(data)

	var sum uint8
	for _, x := range data {
		sum += x
	}
	if got := ReduceSum_AVX2_Uint8x32(v); got != sum {
		t.Errorf("ReduceSum_AVX2_Uint8x32: got %d, want %d", got, sum)
	}
	if got := ReduceMax_AVX2_Uint8x32(v); got != 200 {
		t.Errorf("ReduceMax_AVX2_Uint8x32: got %d, want 200", got)
	}
	if got := ReduceMin_AVX2_Uint8x32(v); got != 3 {
		t.Errorf("ReduceMin_AVX2_Uint8x32: got %d, want 3", got)
	}
	if AllZero_AVX2_Uint8x32(v) || !AllZero_AVX2_Uint8x32(archsimd.BroadcastUint8x32(0)) {
		t.Error("AllZero_AVX2_Uint8x32 mismatch")
	}
}

func TestReduceAVX2Uint32x8(t *testing.T) {
	requireAVX2(t)
	v := archsimd.LoadUint32x8Slice([]uint32{4, 9, 1 << 31, 2, 1 << 31, 8, 6, 5})
	if got := ReduceSum_AVX2_Uint32x8(v); got != 34 {
		t.Errorf("ReduceSum_AVX2_Uint32x8: got %d, want 34 (wrapped)", got)
	}
	if got := ReduceMax_AVX2_Uint32x8(v); got != 1<<31 {
		t.Errorf("ReduceMax_AVX2_Uint32x8: got %d", got)
	}
	if got := ReduceMin_AVX2_Uint32x8(v); got != 2 {
		t.Errorf("ReduceMin_AVX2_Uint32x8: got %d, want 2", got)
	}
	if AllZero_AVX2_Uint32x8(v) {
		t.Error("AllZero_AVX2_Uint32x8 on non-zero lanes")
	}
}

func TestReduceAVX2Uint64x4(t *testing.T) {
	requireAVX2(t)
	v := archsimd.LoadUint64x4Slice([]uint64{3, ^uint64(0), 0, 9})
	if got := ReduceSum_AVX2_Uint64x4(v); got != 11 {
		t.Errorf("ReduceSum_AVX2_Uint64x4: got %d, want 11 (wrapped)", got)
	}
	if got := ReduceMax_AVX2_Uint64x4(v); got != ^uint64(0) {
		t.Errorf("ReduceMax_AVX2_Uint64x4: got %d", got)
	}
	if got := ReduceMin_AVX2_Uint64x4(v); got != 0 {
		t.Errorf("ReduceMin_AVX2_Uint64x4: got %d, want 0", got)
	}
	if !AllZero_AVX2_Uint64x4(archsimd.BroadcastUint64x4(0)) {
		t.Error("AllZero_AVX2_Uint64x4 on zero lanes")
	}
}

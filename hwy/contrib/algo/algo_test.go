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
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-multiset/hwy"
)

// laneWidths covers the scalar realization, odd widths that force a padded
// tail on most sizes, and the widest lane groups.
var laneWidths = []int{1, 2, 3, 4, 7, 8, 16, 64, 1000}

var sizes = []int{0, 1, 2, 3, 5, 8, 15, 16, 17, 33, 64, 65, 130}

func randomCounts[T hwy.Lanes](r *rand.Rand, n int, limit uint64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.Uint64N(limit))
	}
	return out
}

// checkMatchesScalar compares every kernel at the given lane width against
// the scalar realization on the same input.
func checkMatchesScalar[T hwy.Lanes](t *testing.T, a, b []T, lanes int) {
	t.Helper()
	for _, op := range []struct {
		name string
		fn   func(dst, src []T, lanes int)
	}{
		{"Add", AddAssign[T]},
		{"Sub", SubAssign[T]},
		{"Mul", MulAssign[T]},
		{"Div", DivAssign[T]},
		{"Min", MinAssign[T]},
		{"Max", MaxAssign[T]},
	} {
		want := slices.Clone(a)
		op.fn(want, b, 1)
		got := slices.Clone(a)
		op.fn(got, b, lanes)
		assert.Equal(t, want, got, op.name)
	}

	assert.Equal(t, Sum(a, 1), Sum(a, lanes), "Sum")
	assert.Equal(t, CountNonZero(a, 1), CountNonZero(a, lanes), "CountNonZero")
	assert.Equal(t, AllZero(a, 1), AllZero(a, lanes), "AllZero")

	wi, wv := ArgMax(a, 1)
	gi, gv := ArgMax(a, lanes)
	assert.Equal(t, wi, gi, "ArgMax index")
	assert.Equal(t, wv, gv, "ArgMax value")

	wi, wv = ArgMin(a, 1)
	gi, gv = ArgMin(a, lanes)
	assert.Equal(t, wi, gi, "ArgMin index")
	assert.Equal(t, wv, gv, "ArgMin value")

	assert.Equal(t, All(a, b, LessEqual[T]{}, 1), All(a, b, LessEqual[T]{}, lanes), "All LessEqual")
	assert.Equal(t, All(a, b, GreaterEqual[T]{}, 1), All(a, b, GreaterEqual[T]{}, lanes), "All GreaterEqual")
	assert.Equal(t, All(a, b, Equal[T]{}, 1), All(a, b, Equal[T]{}, lanes), "All Equal")
	assert.Equal(t, All(a, a, Equal[T]{}, 1), All(a, a, Equal[T]{}, lanes), "All Equal self")
	assert.Equal(t, Any(a, b, Less[T]{}, 1), Any(a, b, Less[T]{}, lanes), "Any Less")
	assert.Equal(t, Any(a, b, Greater[T]{}, 1), Any(a, b, Greater[T]{}, lanes), "Any Greater")
	assert.Equal(t, Any(a, b, Equal[T]{}, 1), Any(a, b, Equal[T]{}, lanes), "Any Equal")
	assert.Equal(t, Intersects(a, b, 1), Intersects(a, b, lanes), "Intersects")

	// min(a, b) <= a always holds, so both predicates must accept it.
	lo := slices.Clone(a)
	MinAssign(lo, b, 1)
	assert.True(t, All(lo, a, LessEqual[T]{}, lanes), "All LessEqual after Min")
	assert.True(t, All(a, lo, GreaterEqual[T]{}, lanes), "All GreaterEqual after Min")
}

// withPortableKernels disables the native kernels for the rest of the test,
// so lane widths > 1 run on hwy.Vec blocks.
func withPortableKernels(t *testing.T) {
	t.Helper()
	saved8, saved16, saved32, saved64 := native8, native16, native32, native64
	native8, native16, native32, native64 = nativeKernels[uint8]{}, nativeKernels[uint16]{}, nativeKernels[uint32]{}, nativeKernels[uint64]{}
	t.Cleanup(func() {
		native8, native16, native32, native64 = saved8, saved16, saved32, saved64
	})
}

func runMatchesScalar[T hwy.Lanes](t *testing.T, seed uint64) {
	r := rand.New(rand.NewPCG(seed, 2))
	var zero T
	maxValue := uint64(^zero)
	for _, n := range sizes {
		for trial := range 4 {
			// Small limits produce many zeros and ties; large ones exercise wrapping.
			limit := []uint64{2, 4, 256, maxValue}[trial]
			a := randomCounts[T](r, n, limit)
			b := randomCounts[T](r, n, limit)

			for _, lanes := range laneWidths[1:] {
				name := fmt.Sprintf("n=%d/trial=%d/lanes=%d", n, trial, lanes)
				t.Run(name, func(t *testing.T) {
					checkMatchesScalar(t, a, b, lanes)
				})
			}
		}
	}
}

type namedCount uint16

func TestKernelsMatchScalar(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { runMatchesScalar[uint8](t, 1) })
	t.Run("uint16", func(t *testing.T) { runMatchesScalar[uint16](t, 2) })
	t.Run("uint32", func(t *testing.T) { runMatchesScalar[uint32](t, 3) })
	t.Run("uint64", func(t *testing.T) { runMatchesScalar[uint64](t, 4) })
	t.Run("named", func(t *testing.T) { runMatchesScalar[namedCount](t, 5) })
}

func TestPortableKernelsMatchScalar(t *testing.T) {
	withPortableKernels(t)
	require.False(t, HasNativeKernels())
	runMatchesScalar[uint8](t, 6)
	runMatchesScalar[uint64](t, 7)
}

func TestTransformTailLeavesRestUntouched(t *testing.T) {
	withPortableKernels(t)
	// Five elements in four-lane blocks: the masked tail store must not
	// write past the one real lane of the last block.
	dst := []uint32{1, 2, 3, 4, 5, 99, 99}
	AddAssign(dst[:5], []uint32{1, 1, 1, 1, 1}, 4)
	assert.Equal(t, []uint32{2, 3, 4, 5, 6, 99, 99}, dst)
}

func TestArgMaxFirstOccurrence(t *testing.T) {
	for _, lanes := range laneWidths {
		idx, v := ArgMax([]uint16{2, 0, 5, 3, 5, 5}, lanes)
		assert.Equal(t, 2, idx, "lanes=%d", lanes)
		assert.Equal(t, uint16(5), v, "lanes=%d", lanes)

		idx, v = ArgMin([]uint16{2, 0, 5, 0, 3}, lanes)
		assert.Equal(t, 1, idx, "lanes=%d", lanes)
		assert.Equal(t, uint16(0), v, "lanes=%d", lanes)
	}
}

func TestArgMinIgnoresPadding(t *testing.T) {
	// Three real lanes in an eight-lane block: a zero pad must not win.
	for _, lanes := range []int{4, 8} {
		idx, v := ArgMin([]uint32{9, 7, 8}, lanes)
		assert.Equal(t, 1, idx)
		assert.Equal(t, uint32(7), v)
	}

	// All real values equal the padding ceiling.
	idx, v := ArgMin([]uint8{255, 255, 255}, 8)
	assert.Equal(t, 0, idx)
	assert.Equal(t, uint8(255), v)
}

func TestEmptyInput(t *testing.T) {
	for _, lanes := range laneWidths {
		idx, v := ArgMax[uint64](nil, lanes)
		assert.Equal(t, -1, idx)
		assert.Zero(t, v)
		idx, v = ArgMin[uint64](nil, lanes)
		assert.Equal(t, -1, idx)
		assert.Zero(t, v)
		assert.Zero(t, Sum[uint64](nil, lanes))
		assert.Zero(t, CountNonZero[uint64](nil, lanes))
		assert.True(t, AllZero[uint64](nil, lanes))
		assert.True(t, All[uint64](nil, nil, LessEqual[uint64]{}, lanes))
		assert.False(t, Any[uint64](nil, nil, Less[uint64]{}, lanes))

		var dst []uint64
		AddAssign(dst, nil, lanes)
		assert.Empty(t, dst)
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	for _, lanes := range laneWidths {
		dst := []uint32{10, 20, 30, 40, 50}
		DivAssign(dst, []uint32{2, 0, 3, 0, 5}, lanes)
		require.Equal(t, []uint32{5, 0, 10, 0, 10}, dst, "lanes=%d", lanes)
	}
}

func TestSumWraps(t *testing.T) {
	a := []uint8{200, 100, 10}
	for _, lanes := range laneWidths {
		assert.Equal(t, uint8(54), Sum(a, lanes), "lanes=%d", lanes)
	}
}

func TestCountNonZeroWideDomain(t *testing.T) {
	// 300 non-zero uint8 counters: the count must not wrap at 256.
	a := make([]uint8, 300)
	for i := range a {
		a[i] = 255
	}
	for _, lanes := range laneWidths {
		assert.Equal(t, 300, CountNonZero(a, lanes), "lanes=%d", lanes)
	}
}

func TestIntersects(t *testing.T) {
	for _, lanes := range laneWidths {
		assert.True(t, Intersects([]uint8{1, 2, 0, 0}, []uint8{0, 2, 3, 0}, lanes))
		assert.False(t, Intersects([]uint8{1, 2, 0, 0}, []uint8{0, 0, 3, 4}, lanes))
		// Pointwise minimums summing to 256 would wrap to zero in uint8.
		assert.True(t, Intersects([]uint8{128, 128}, []uint8{128, 128}, lanes))
	}
}

func BenchmarkSum(b *testing.B) {
	a := randomCounts[uint32](rand.New(rand.NewPCG(3, 4)), 256, 1<<20)
	for _, lanes := range []int{1, hwy.MaxLanes[uint32]()} {
		b.Run(fmt.Sprintf("lanes=%d", lanes), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Sum(a, lanes)
			}
		})
	}
}

func BenchmarkMinAssign(b *testing.B) {
	r := rand.New(rand.NewPCG(5, 6))
	dst := randomCounts[uint16](r, 256, 1<<16)
	src := randomCounts[uint16](r, 256, 1<<16)
	for _, lanes := range []int{1, hwy.MaxLanes[uint16]()} {
		b.Run(fmt.Sprintf("lanes=%d", lanes), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				MinAssign(dst, src, lanes)
			}
		})
	}
}

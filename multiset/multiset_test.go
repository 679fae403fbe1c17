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

package multiset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-multiset/hwy"
	"github.com/ajroetker/go-multiset/hwy/contrib/algo"
)

type ms4 = MSu8[[4]uint8]

func u8x4(a, b, c, d uint8) ms4 {
	return FromSlice[uint8, [4]uint8]([]uint8{a, b, c, d})
}

func TestSetOperations(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := u8x4(1, 2, 0, 0)
		b := u8x4(0, 2, 3, 0)

		assert.Equal(t, u8x4(0, 2, 0, 0), a.Intersection(&b))
		assert.Equal(t, u8x4(1, 2, 3, 0), a.Union(&b))
		assert.False(t, a.IsDisjoint(&b))
		assert.Equal(t, uint8(3), a.Total())

		idx, v := a.Argmax()
		assert.Equal(t, 1, idx)
		assert.Equal(t, uint8(2), v)

		// The operands are unchanged.
		assert.Equal(t, u8x4(1, 2, 0, 0), a)
		assert.Equal(t, u8x4(0, 2, 3, 0), b)

		c := u8x4(0, 0, 3, 4)
		assert.True(t, a.IsDisjoint(&c))
	})
}

func TestDisjointDoesNotWrap(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := u8x4(128, 128, 0, 0)
		assert.False(t, a.IsDisjoint(&a))
	})
}

func TestSubsets(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := u8x4(1, 2, 0, 0)
		b := u8x4(1, 3, 0, 1)
		c := u8x4(0, 2, 3, 0)

		assert.True(t, a.IsSubset(&b))
		assert.True(t, a.IsProperSubset(&b))
		assert.True(t, b.IsSuperset(&a))
		assert.True(t, b.IsProperSuperset(&a))
		assert.False(t, b.IsSubset(&a))
		assert.False(t, a.IsSubset(&c))
		assert.False(t, a.IsSuperset(&c))

		assert.True(t, a.IsSubset(&a))
		assert.True(t, a.IsSuperset(&a))
		assert.False(t, a.IsProperSubset(&a))
		assert.False(t, a.IsProperSuperset(&a))

		assert.True(t, a.IsAnyLesser(&c))
		assert.True(t, a.IsAnyGreater(&c))
		assert.False(t, a.IsAnyGreater(&b))
	})
}

func TestPartialCompare(t *testing.T) {
	a := u8x4(1, 2, 0, 0)
	tests := []struct {
		name  string
		other ms4
		want  Ordering
	}{
		{"equal", u8x4(1, 2, 0, 0), Equal},
		{"less", u8x4(1, 2, 1, 0), Less},
		{"greater", u8x4(0, 2, 0, 0), Greater},
		{"incomparable", u8x4(0, 2, 3, 0), Incomparable},
	}
	forEachBackend(t, func(t *testing.T) {
		for _, tt := range tests {
			assert.Equal(t, tt.want, a.PartialCompare(&tt.other), tt.name)
		}
	})
	assert.Equal(t, "incomparable", Incomparable.String())
}

func TestEqual(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := u8x4(1, 2, 3, 4)
		b := u8x4(1, 2, 3, 4)
		c := u8x4(1, 2, 3, 5)
		assert.True(t, a.Equal(&b))
		assert.False(t, a.Equal(&c))
	})
}

func TestReductions(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		m := u8x4(1, 2, 3, 4)
		assert.Equal(t, uint8(10), m.Total())
		assert.Equal(t, 4, m.CountNonZero())
		assert.Equal(t, 0, m.CountZero())
		assert.False(t, m.IsEmpty())
		assert.False(t, m.IsSingleton())

		assert.Equal(t, 3, m.Imax())
		assert.Equal(t, 0, m.Imin())
		assert.Equal(t, uint8(4), m.Max())
		assert.Equal(t, uint8(1), m.Min())

		s := u8x4(0, 0, 7, 0)
		assert.True(t, s.IsSingleton())
		assert.Equal(t, 3, s.CountZero())
	})
}

func TestArgTiesKeepFirst(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		m := FromSlice[uint16, [9]uint16]([]uint16{3, 1, 5, 1, 5, 0, 9, 0, 9})
		idx, v := m.Argmax()
		assert.Equal(t, 6, idx)
		assert.Equal(t, uint16(9), v)
		idx, v = m.Argmin()
		assert.Equal(t, 5, idx)
		assert.Equal(t, uint16(0), v)
	})
}

func TestTotalWraps(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		m := u8x4(200, 100, 0, 10)
		assert.Equal(t, uint8(54), m.Total())
	})
}

func TestEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		check := func(t *testing.T, n, nonZero int, empty bool, total uint64) {
			t.Helper()
			assert.True(t, empty, "n=%d", n)
			assert.Zero(t, total, "n=%d", n)
			assert.Zero(t, nonZero, "n=%d", n)
		}

		m0 := Empty[uint8, [0]uint8]()
		check(t, 0, m0.CountNonZero(), m0.IsEmpty(), uint64(m0.Total()))
		m1 := Empty[uint16, [1]uint16]()
		check(t, 1, m1.CountNonZero(), m1.IsEmpty(), uint64(m1.Total()))
		m37 := Empty[uint32, [37]uint32]()
		check(t, 37, m37.CountNonZero(), m37.IsEmpty(), uint64(m37.Total()))
		m1024 := Empty[uint64, [1024]uint64]()
		check(t, 1024, m1024.CountNonZero(), m1024.IsEmpty(), m1024.Total())
		assert.Equal(t, 1024, m1024.CountZero())
	})
}

func TestZeroSizedDomain(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := Repeat[uint8, [0]uint8](7)
		b := Empty[uint8, [0]uint8]()
		a.AddAssign(&b)
		a.DivAssign(&b)
		assert.Equal(t, 0, a.Len())
		assert.Equal(t, "[]", a.String())
		assert.True(t, a.IsSubset(&b))
		assert.True(t, a.IsSuperset(&b))
		assert.True(t, a.IsDisjoint(&b))
		assert.Equal(t, Equal, a.PartialCompare(&b))

		idx, v := a.Argmax()
		assert.Equal(t, -1, idx)
		assert.Zero(t, v)
		assert.Equal(t, -1, a.Imin())
		assert.Zero(t, CollisionEntropy(&a))

		_, ok := a.Get(0)
		assert.False(t, ok)
	})
}

func TestRepeat(t *testing.T) {
	m := Repeat[uint32, [5]uint32](3)
	assert.Equal(t, [5]uint32{3, 3, 3, 3, 3}, m.Array())
	m.Clear()
	assert.True(t, m.IsEmpty())
}

func TestFromSliceRoundTrip(t *testing.T) {
	s := []uint16{9, 0, 4, 1, 0, 65535, 2}
	m := FromSlice[uint16, [7]uint16](s)
	for i, want := range s {
		got, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 7, Len[uint16, [7]uint16]())

	// The multiset owns a copy.
	s[0] = 1
	assert.Equal(t, uint16(9), m.GetUnchecked(0))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	assert.PanicsWithError(t, "multiset: slice length mismatch: expected 4, got 3", func() {
		FromSlice[uint8, [4]uint8]([]uint8{1, 2, 3})
	})

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		var lm *LengthMismatchError
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 2, lm.Expected)
		assert.Equal(t, 5, lm.Actual)
	}()
	FromSlice[uint64, [2]uint64](make([]uint64, 5))
}

func TestFromSeq(t *testing.T) {
	short := FromSeq[uint8, [4]uint8](slices.Values([]uint8{5, 6}))
	assert.Equal(t, u8x4(5, 6, 0, 0), short)

	consumed := 0
	long := FromSeq[uint8, [4]uint8](func(yield func(uint8) bool) {
		for i := range uint8(10) {
			consumed++
			if !yield(i + 1) {
				return
			}
		}
	})
	assert.Equal(t, u8x4(1, 2, 3, 4), long)
	assert.Equal(t, 4, consumed)

	none := FromSeq[uint8, [0]uint8](slices.Values([]uint8{1}))
	assert.Equal(t, 0, none.Len())

	// Round trip through the iterator.
	again := FromSeq[uint8, [4]uint8](long.Values())
	assert.Equal(t, long, again)
}

func TestCheckedAccessors(t *testing.T) {
	m := u8x4(1, 2, 0, 0)

	assert.True(t, m.Contains(1))
	assert.False(t, m.Contains(3))
	assert.False(t, m.Contains(5))
	assert.False(t, m.Contains(-1))

	m.Insert(2, 5)
	v, ok := m.Get(2)
	assert.True(t, ok)
	assert.Equal(t, uint8(5), v)

	m.Remove(1)
	v, ok = m.Get(1)
	assert.True(t, ok)
	assert.Zero(t, v)

	// Out of range is a no-op or absent.
	before := m
	m.Insert(4, 9)
	m.Insert(-1, 9)
	m.Remove(100)
	assert.Equal(t, before, m)
	_, ok = m.Get(4)
	assert.False(t, ok)
	_, ok = m.Get(-1)
	assert.False(t, ok)
}

func TestUncheckedMatchesChecked(t *testing.T) {
	checked := FromSlice[uint32, [6]uint32]([]uint32{0, 1, 0, 7, 3, 0})
	unchecked := checked
	for i := range checked.Len() {
		v, ok := checked.Get(i)
		require.True(t, ok)
		assert.Equal(t, v, unchecked.GetUnchecked(i))
		assert.Equal(t, checked.Contains(i), unchecked.ContainsUnchecked(i))

		checked.Insert(i, uint32(10*i))
		unchecked.InsertUnchecked(i, uint32(10*i))
	}
	assert.Equal(t, checked, unchecked)

	for i := 0; i < checked.Len(); i += 2 {
		checked.Remove(i)
		unchecked.RemoveUnchecked(i)
	}
	assert.Equal(t, checked, unchecked)
	assert.Equal(t, [6]uint32{0, 10, 0, 30, 0, 50}, unchecked.Array())
}

func TestArithmetic(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		a := u8x4(10, 20, 30, 250)
		b := u8x4(2, 0, 3, 10)

		sum := a
		sum.AddAssign(&b)
		assert.Equal(t, u8x4(12, 20, 33, 4), sum)

		diff := a
		diff.SubAssign(&b)
		assert.Equal(t, u8x4(8, 20, 27, 240), diff)

		prod := a
		prod.MulAssign(&b)
		assert.Equal(t, u8x4(20, 0, 90, 196), prod)

		quot := a
		quot.DivAssign(&b)
		assert.Equal(t, u8x4(5, 0, 10, 25), quot)

		// Wrapping below zero.
		under := u8x4(0, 1, 0, 0)
		under.SubAssign(&b)
		assert.Equal(t, u8x4(254, 1, 253, 246), under)

		// Self-assignment.
		twice := a
		twice.AddAssign(&twice)
		assert.Equal(t, u8x4(20, 40, 60, 244), twice)
	})
}

func TestString(t *testing.T) {
	m := u8x4(1, 2, 0, 0)
	assert.Equal(t, "[1 2 0 0]", m.String())
}

func TestSupportedSizes(t *testing.T) {
	sizes := SupportedSizes()
	assert.True(t, slices.IsSorted(sizes))
	assert.Equal(t, 0, sizes[0])
	assert.Equal(t, 1024, sizes[len(sizes)-1])

	assert.True(t, IsSupportedSize(64))
	assert.True(t, IsSupportedSize(72))
	assert.False(t, IsSupportedSize(65))
	assert.False(t, IsSupportedSize(2048))

	// Callers cannot modify the package table.
	sizes[0] = 99
	assert.Equal(t, 0, SupportedSizes()[0])

	assert.Equal(t, 256, Len[uint8, [256]uint8]())
}

func TestNumericConstants(t *testing.T) {
	assert.Equal(t, uint8(0), Zero[uint8]())
	assert.Equal(t, uint64(1), One[uint64]())
}

func TestBackend(t *testing.T) {
	assert.Equal(t, "scalar", BackendScalar.String())
	assert.Equal(t, "lanes", BackendLanes.String())

	prev := setBackend(BackendScalar)
	defer setBackend(prev)
	assert.Equal(t, BackendScalar, ActiveBackend())
	assert.Equal(t, 1, lanesFor[uint8]())
}

func TestDefaultBackendNeedsNativeKernels(t *testing.T) {
	if defaultBackend() == BackendLanes {
		assert.True(t, algo.HasNativeKernels())
		assert.Equal(t, hwy.DispatchAVX2, hwy.CurrentLevel())
	}
	if !algo.HasNativeKernels() {
		assert.Equal(t, BackendScalar, defaultBackend())
	}
}

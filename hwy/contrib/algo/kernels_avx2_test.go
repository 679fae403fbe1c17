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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-multiset/hwy"
)

func TestNativeKernelsFollowDispatch(t *testing.T) {
	assert.Equal(t, hwy.CurrentLevel() == hwy.DispatchAVX2, HasNativeKernels())
}

func TestNativeCountNonZeroFlushes(t *testing.T) {
	if !HasNativeKernels() {
		t.Skip("no native kernels on this CPU")
	}
	// More than flushBlocks full blocks of non-zero uint8 lanes.
	a := make([]uint8, 32*(flushBlocks+3)+5)
	for i := range a {
		a[i] = 1
	}
	count, ok := nativeCountNonZero(a)
	assert.True(t, ok)
	assert.Equal(t, len(a), count)
}

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

package hwy

// TailMaskN creates a mask over 'lanes' lanes with the first 'count' active.
// It selects the valid lanes of a zero-padded final block:
//
//	remaining := n % lanes
//	tail := hwy.TailMaskN[uint32](remaining, lanes)
//	hwy.MaskStore(tail, v, out[n-remaining:])
func TailMaskN[T Lanes](count, lanes int) Mask[T] {
	lanes = clampLanes(lanes)
	count = max(0, min(count, lanes))
	return Mask[T]{bits: laneBits(count), n: lanes}
}

// ProcessWithTailN walks size elements in blocks of 'lanes'. It calls
// fullFn(offset) for each full block and then tailFn(offset, count) once if
// size is not a multiple of lanes.
func ProcessWithTailN(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes = clampLanes(lanes)

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

func clampLanes(lanes int) int {
	return max(1, min(lanes, MaxVecLanes))
}

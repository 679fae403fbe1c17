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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD kernels are in use, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates the AVX2 kernels (256-bit SIMD) are in use.
	// Only amd64 builds with GOEXPERIMENT=simd compile them.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// hostWidth is the widest vector register the CPU offers, in bytes, whether
// or not kernels for it are compiled in. Set by init() in dispatch_*.go files.
var hostWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes: 32 for AVX2, and
// 16 in scalar mode so portable lane blocks keep a useful size.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// It is either "avx2" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HostWidth returns the widest vector register width the CPU supports, in
// bytes, or 0 when it is unknown. It can exceed CurrentWidth when this build
// carries no kernels for that width.
func HostWidth() int {
	return hostWidth
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, callers should use their scalar realization regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - uint8: 32/1 = 32 lanes
//   - uint32: 32/4 = 8 lanes
//   - uint64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	return lanesForWidth[T](currentWidth)
}

func lanesForWidth[T Lanes](width int) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	n := width / elementSize
	if n > MaxVecLanes {
		n = MaxVecLanes
	}
	if n < 1 {
		n = 1
	}
	return n
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

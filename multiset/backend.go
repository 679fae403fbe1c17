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
	"github.com/ajroetker/go-multiset/hwy"
	"github.com/ajroetker/go-multiset/hwy/contrib/algo"
)

// Backend identifies the realization used for bulk operations.
type Backend int

const (
	// BackendScalar processes one counter at a time.
	BackendScalar Backend = iota

	// BackendLanes runs the vector realization of the algo kernels: native
	// AVX2 kernels when installed, hwy.Vec blocks of hwy.MaxLanes[T]()
	// counters otherwise.
	BackendLanes
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendLanes:
		return "lanes"
	default:
		return "unknown"
	}
}

// activeBackend is chosen once at init time and only changed by tests.
var activeBackend = defaultBackend()

// defaultBackend selects the lane realization only when native vector
// kernels are installed.
func defaultBackend() Backend {
	if !LanesCompiled || hwy.NoSimdEnv() || hwy.CurrentLevel() == hwy.DispatchScalar || !algo.HasNativeKernels() {
		return BackendScalar
	}
	return BackendLanes
}

// ActiveBackend returns the realization used by this process.
func ActiveBackend() Backend {
	return activeBackend
}

// setBackend switches the realization and returns the previous one.
// Requests for the lane realization are ignored when it is not compiled in.
func setBackend(b Backend) Backend {
	prev := activeBackend
	if b == BackendLanes && !LanesCompiled {
		return prev
	}
	activeBackend = b
	return prev
}

// lanesFor returns the lane width handed to the algo kernels.
func lanesFor[T Counter]() int {
	if activeBackend == BackendLanes {
		return hwy.ScalableTag[T]{}.MaxLanes()
	}
	return hwy.ScalarTag[T]{}.MaxLanes()
}

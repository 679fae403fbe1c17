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

	"github.com/ajroetker/go-multiset/hwy"
)

// Counter is the set of counter types a Multiset can hold.
type Counter interface {
	hwy.UnsignedInts
}

// EntropyCounter is the set of counter types whose values convert to
// float64 without loss. CollisionEntropy and ShannonEntropy require it.
type EntropyCounter interface {
	~uint8 | ~uint16 | ~uint32
}

// Zero returns the zero counter.
func Zero[T Counter]() T { return 0 }

// One returns the unit counter.
func One[T Counter]() T { return 1 }

// Len returns the domain size of a multiset backed by S.
func Len[T Counter, S Storage[T]]() int {
	var s S
	return len(s)
}

// SupportedSizes returns the domain sizes accepted by Storage, ascending.
func SupportedSizes() []int {
	return slices.Clone(supportedSizes[:])
}

// IsSupportedSize reports whether n is a domain size accepted by Storage.
func IsSupportedSize(n int) bool {
	_, found := slices.BinarySearch(supportedSizes[:], n)
	return found
}

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

// ScalableTag sizes lane blocks to the dispatched SIMD width.
type ScalableTag[T Lanes] struct{}

// MaxLanes returns MaxLanes[T]().
func (ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// ScalarTag sizes lane blocks to a single element, which selects the
// element-at-a-time loops in contrib/algo.
type ScalarTag[T Lanes] struct{}

// MaxLanes returns 1.
func (ScalarTag[T]) MaxLanes() int {
	return 1
}

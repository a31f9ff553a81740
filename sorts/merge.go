// Copyright 2025 go-sortbench Authors
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

package sorts

import (
	"cmp"
	"slices"
)

// MergeSort returns a sorted copy of data. data is not modified.
// The sort is stable: on ties the element from the left half wins.
func MergeSort[T cmp.Ordered](data []T) []T {
	if len(data) < 2 {
		return slices.Clone(data)
	}

	mid := len(data) / 2
	left := MergeSort(data[:mid])
	right := MergeSort(data[mid:])

	merged := make([]T, len(data))
	mergeInto(merged, left, right)
	return merged
}

// mergeInto merges the sorted slices left and right into dst, which must
// have length len(left)+len(right) and must not overlap either input.
func mergeInto[T cmp.Ordered](dst, left, right []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

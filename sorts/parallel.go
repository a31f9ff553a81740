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

	"github.com/ajroetker/go-sortbench/sorts/workerpool"
)

// parallelMergeThreshold is the input size below which MergeSortParallel
// runs MergeSort on the caller.
const parallelMergeThreshold = 4096

// MergeSortParallel returns a sorted copy of data using pool. It splits data
// into one run per worker, sorts the runs concurrently with MergeSort and
// then merges adjacent runs pairwise in parallel rounds. The result is stable
// and identical to MergeSort(data). data is not modified.
//
// A nil pool, a single-worker pool or a small input falls back to MergeSort.
func MergeSortParallel[T cmp.Ordered](pool *workerpool.Pool, data []T) []T {
	n := len(data)
	if pool == nil || pool.Workers() < 2 || n < parallelMergeThreshold {
		return MergeSort(data)
	}

	// bounds[i] is the start of run i; the last entry is n.
	bounds := pool.Bounds(n)
	src := make([]T, n)
	pool.Chunks(n, func(lo, hi int) {
		copy(src[lo:hi], MergeSort(data[lo:hi]))
	})

	dst := make([]T, n)
	for len(bounds) > 2 {
		runs := len(bounds) - 1
		cur := bounds
		pool.Each((runs+1)/2, func(pair int) {
			lo := cur[2*pair]
			if 2*pair+1 == runs {
				// Odd run out, carried to the next round as is.
				copy(dst[lo:], src[lo:cur[2*pair+1]])
				return
			}
			mid, hi := cur[2*pair+1], cur[2*pair+2]
			mergeInto(dst[lo:hi], src[lo:mid], src[mid:hi])
		})

		next := make([]int, 0, runs/2+2)
		for i := 0; i < len(cur); i += 2 {
			next = append(next, cur[i])
		}
		if next[len(next)-1] != n {
			next = append(next, n)
		}
		bounds = next
		src, dst = dst, src
	}
	return src
}

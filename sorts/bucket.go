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
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BucketSort sorts data in place by distributing its values into k buckets
// by range, selection sorting each bucket and concatenating the buckets back
// into data in index order.
//
// Value v goes to bucket floor(k*v / (max+1)), where max is the largest
// value in data. The product is computed in 128 bits so large values do not
// overflow.
//
// BucketSort returns an error wrapping ErrInvalidArgument when data is empty,
// when k <= 0 or when data holds a negative value. data is left unmodified on
// error.
func BucketSort[T constraints.Integer](data []T, k int) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBucketCount, k)
	}
	maxVal, err := maxNonNegative(data)
	if err != nil {
		return err
	}

	buckets := make([][]T, k)
	for _, v := range data {
		b := bucketIndex(uint64(v), uint64(maxVal), uint64(k))
		buckets[b] = append(buckets[b], v)
	}

	idx := 0
	for _, bucket := range buckets {
		SelectionSort(bucket)
		idx += copy(data[idx:], bucket)
	}
	return nil
}

// bucketIndex returns floor(k*v / (maxVal+1)) for 0 <= v <= maxVal.
// The result is always in [0, k).
func bucketIndex(v, maxVal, k uint64) int {
	hi, lo := bits.Mul64(k, v)
	div := maxVal + 1
	if div == 0 {
		// maxVal+1 == 2^64, so the quotient is the high word.
		return int(hi)
	}
	// hi < div holds because the quotient is below k.
	q, _ := bits.Div64(hi, lo, div)
	return int(q)
}

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
	"fmt"

	"golang.org/x/exp/constraints"
)

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// maxNonNegative returns the largest element of data, or ErrNegativeValue
// naming the first negative element. data must not be empty.
func maxNonNegative[T constraints.Integer](data []T) (T, error) {
	maxVal := data[0]
	for i, v := range data {
		if v < 0 {
			return 0, fmt.Errorf("%w: data[%d] = %d", ErrNegativeValue, i, v)
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}

// decimalDigits returns the number of base-10 digits of v (at least 1).
func decimalDigits[T constraints.Integer](v T) int {
	d := 1
	for v >= 10 {
		v /= 10
		d++
	}
	return d
}

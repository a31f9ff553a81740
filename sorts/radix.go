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

	"golang.org/x/exp/constraints"
)

// radixBase is the number of buckets per LSD pass.
const radixBase = 10

// RadixSortBase10 sorts data in place with an LSD radix sort over decimal
// digits, least significant first. The number of passes is the digit count
// of the largest value.
//
// Negative values are rejected with an error wrapping ErrNegativeValue and
// data is left unmodified.
func RadixSortBase10[T constraints.Integer](data []T) error {
	if len(data) == 0 {
		return nil
	}
	maxVal, err := maxNonNegative(data)
	if err != nil {
		return err
	}
	radixSortPasses(data, decimalDigits(maxVal))
	return nil
}

// RadixSortDigits is RadixSortBase10 restricted to values of at most digits
// decimal digits. A value needing more digits is rejected with an error
// wrapping ErrDomainLimit instead of being sorted on its low digits only.
func RadixSortDigits[T constraints.Integer](data []T, digits int) error {
	if digits <= 0 {
		return fmt.Errorf("%w: digit count must be positive, got %d", ErrInvalidArgument, digits)
	}
	if len(data) == 0 {
		return nil
	}
	maxVal, err := maxNonNegative(data)
	if err != nil {
		return err
	}
	if need := decimalDigits(maxVal); need > digits {
		return fmt.Errorf("%w: %d needs %d decimal digits, limit is %d", ErrDomainLimit, maxVal, need, digits)
	}
	// Passes past the largest value's digit count see only zero digits and
	// leave the order unchanged.
	radixSortPasses(data, decimalDigits(maxVal))
	return nil
}

// radixSortPasses runs passes LSD passes over data, which must hold only
// non-negative values whose digit count is at most passes.
func radixSortPasses[T constraints.Integer](data []T, passes int) {
	src := data
	dst := make([]T, len(data))

	exp := T(1)
	for pass := range passes {
		radixPass(src, dst, exp)
		src, dst = dst, src
		if pass < passes-1 {
			exp *= radixBase
		}
	}

	// After an odd number of passes the result lives in the scratch buffer.
	if passes%2 == 1 {
		copy(data, src)
	}
}

// radixPass performs one stable pass of LSD radix sort from src into dst,
// bucketing on the decimal digit selected by exp (1, 10, 100, ...).
func radixPass[T constraints.Integer](src, dst []T, exp T) {
	var count [radixBase]int

	for _, v := range src {
		count[int((v/exp)%radixBase)]++
	}

	// Prefix sum turns counts into bucket start offsets.
	offset := 0
	for b := range radixBase {
		c := count[b]
		count[b] = offset
		offset += c
	}

	// Scatter in input order so each bucket keeps the previous pass's order.
	for _, v := range src {
		d := int((v / exp) % radixBase)
		dst[count[d]] = v
		count[d]++
	}
}

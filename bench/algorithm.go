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

package bench

import "fmt"

// Algorithm identifies a sort the harness can time.
type Algorithm int

const (
	Selection Algorithm = iota
	Merge
	MergeParallel
	Radix
	Bucket
	Stdlib

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	Selection:     "selection",
	Merge:         "merge",
	MergeParallel: "merge-parallel",
	Radix:         "radix",
	Bucket:        "bucket",
	Stdlib:        "stdlib",
}

var algorithmTitles = [numAlgorithms]string{
	Selection:     "Selection Sort",
	Merge:         "Merge Sort",
	MergeParallel: "Parallel Merge Sort",
	Radix:         "Radix Sort",
	Bucket:        "Bucket Sort",
	Stdlib:        "slices.Sort",
}

// String returns the configuration name of a, e.g. "radix".
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Title returns the display name used in reports and charts.
func (a Algorithm) Title() string {
	if a < 0 || a >= numAlgorithms {
		return a.String()
	}
	return algorithmTitles[a]
}

// ParseAlgorithm returns the Algorithm named s.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q (want one of %v)", s, algorithmNames)
}

// Algorithms returns every known algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, numAlgorithms)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

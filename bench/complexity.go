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

// Complexity identifies one of the dummy routines used to draw reference
// growth curves.
type Complexity int

const (
	Linear       Complexity = iota // O(n)
	Logarithmic                    // O(log n)
	Linearithmic                   // O(n log n)

	numComplexities
)

var complexityNames = [numComplexities]string{
	Linear:       "n",
	Logarithmic:  "logn",
	Linearithmic: "nlogn",
}

var complexityTitles = [numComplexities]string{
	Linear:       "O(n)",
	Logarithmic:  "O(log n)",
	Linearithmic: "O(n log n)",
}

var complexityRoutines = [numComplexities]func([]int64) int64{
	Linear:       linearRoutine,
	Logarithmic:  logarithmicRoutine,
	Linearithmic: linearithmicRoutine,
}

func (c Complexity) String() string {
	if c < 0 || c >= numComplexities {
		return fmt.Sprintf("Complexity(%d)", int(c))
	}
	return complexityNames[c]
}

// Title returns the display name used in reports and charts.
func (c Complexity) Title() string {
	if c < 0 || c >= numComplexities {
		return c.String()
	}
	return complexityTitles[c]
}

// ParseComplexity returns the Complexity named s ("n", "logn" or "nlogn").
func ParseComplexity(s string) (Complexity, error) {
	for c, name := range complexityNames {
		if name == s {
			return Complexity(c), nil
		}
	}
	return 0, fmt.Errorf("unknown complexity %q (want one of %v)", s, complexityNames)
}

// Complexities returns every known complexity class in declaration order.
func Complexities() []Complexity {
	all := make([]Complexity, numComplexities)
	for i := range all {
		all[i] = Complexity(i)
	}
	return all
}

// Run executes the routine for c once over data and returns a value derived
// from the work done.
func (c Complexity) Run(data []int64) int64 {
	return complexityRoutines[c](data)
}

// HireResult is the outcome of one Hire call.
type HireResult struct {
	Best  int64 // last hired value
	Hires int   // number of hires
	Work  int64 // combined routine results
}

// Hire runs the hiring loop over candidates: every candidate better than the
// best seen so far is hired, and each hire costs one run of the routine for c
// over all candidates.
func Hire(candidates []int64, c Complexity) HireResult {
	var res HireResult
	for _, v := range candidates {
		if v > res.Best {
			res.Work += c.Run(candidates)
			res.Best = v
			res.Hires++
		}
	}
	return res
}

func linearRoutine(data []int64) int64 {
	var sum int64
	for _, v := range data {
		sum += v
	}
	return sum
}

func logarithmicRoutine(data []int64) int64 {
	var steps int64
	for n := len(data); n > 0; n /= 2 {
		steps++
	}
	return steps
}

func linearithmicRoutine(data []int64) int64 {
	n := len(data)
	var acc int64
	for i := range n {
		for j := 1; j < n; j *= 2 {
			acc += data[i] ^ int64(j)
		}
	}
	return acc
}

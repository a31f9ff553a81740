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

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Point is one measurement: how long a run over Size elements took.
type Point struct {
	Size    int
	Elapsed time.Duration
}

// Series is the measurements for one algorithm or complexity class, in sweep
// order.
type Series struct {
	Name   string
	Points []Point
}

// Fit estimates the growth exponent of s: the slope of the least-squares
// line through (log size, log seconds). An O(n) routine fits near 1 and an
// O(n²) one near 2. ok is false when fewer than two points have a positive
// duration and distinct sizes.
func Fit(s Series) (exponent float64, ok bool) {
	var xs, ys []float64
	sizes := make(map[int]bool)
	for _, p := range s.Points {
		if p.Elapsed <= 0 || p.Size <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(p.Size)))
		ys = append(ys, math.Log(p.Elapsed.Seconds()))
		sizes[p.Size] = true
	}
	if len(sizes) < 2 {
		return 0, false
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, true
}

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
	"fmt"
	"math"
	"math/rand/v2"
)

// Generator produces uniformly distributed random inputs. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator for the (seed, stream) pair. Generators
// built from the same pair produce the same values.
func NewGenerator(seed, stream uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Ints returns n values drawn uniformly from [0, maxVal].
func (g *Generator) Ints(n int, maxVal int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate: negative length %d", n)
	}
	if maxVal < 0 {
		return nil, fmt.Errorf("generate: negative upper bound %d", maxVal)
	}

	data := make([]int64, n)
	if maxVal == math.MaxInt64 {
		for i := range data {
			data[i] = g.rng.Int64()
		}
		return data, nil
	}
	for i := range data {
		data[i] = g.rng.Int64N(maxVal + 1)
	}
	return data, nil
}

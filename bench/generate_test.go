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

package bench_test

import (
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/bench"
)

func TestGenerator_Range(t *testing.T) {
	g := bench.NewGenerator(1, 2)
	data, err := g.Ints(10000, 10)
	require.NoError(t, err)
	require.Len(t, data, 10000)

	seen := make(map[int64]bool)
	for _, v := range data {
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(10))
		seen[v] = true
	}
	// Both ends of the closed range show up.
	assert.True(t, seen[0])
	assert.True(t, seen[10])
}

func TestGenerator_Deterministic(t *testing.T) {
	a, err := bench.NewGenerator(7, 100).Ints(100, 1000)
	require.NoError(t, err)
	b, err := bench.NewGenerator(7, 100).Ints(100, 1000)
	require.NoError(t, err)
	c, err := bench.NewGenerator(7, 101).Ints(100, 1000)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerator_Bounds(t *testing.T) {
	g := bench.NewGenerator(1, 1)

	_, err := g.Ints(-1, 10)
	assert.Error(t, err)
	_, err = g.Ints(10, -1)
	assert.Error(t, err)

	data, err := g.Ints(5, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 0}, data)

	data, err = g.Ints(100, math.MaxInt64)
	require.NoError(t, err)
	for _, v := range data {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}

func TestTimer(t *testing.T) {
	mock := clock.NewMock()
	timer := bench.NewTimer(mock)

	elapsed, err := timer.Time(func() error {
		mock.Add(1500 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, elapsed)

	_, err = timer.Time(func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}

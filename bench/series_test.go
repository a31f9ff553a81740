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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/bench"
)

func seriesFrom(name string, exponent float64, sizes ...int) bench.Series {
	s := bench.Series{Name: name}
	for _, n := range sizes {
		secs := 1e-9 * math.Pow(float64(n), exponent)
		s.Points = append(s.Points, bench.Point{Size: n, Elapsed: time.Duration(secs * float64(time.Second))})
	}
	return s
}

func TestFit(t *testing.T) {
	tests := []struct {
		name     string
		exponent float64
	}{
		{"linear", 1},
		{"quadratic", 2},
		{"sublinear", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seriesFrom(tt.name, tt.exponent, 1000, 10000, 100000, 1000000)
			got, ok := bench.Fit(s)
			require.True(t, ok)
			assert.InDelta(t, tt.exponent, got, 0.01)
		})
	}
}

func TestFit_NotEnoughPoints(t *testing.T) {
	_, ok := bench.Fit(bench.Series{})
	assert.False(t, ok)

	_, ok = bench.Fit(bench.Series{Points: []bench.Point{
		{Size: 1000, Elapsed: time.Millisecond},
		{Size: 1000, Elapsed: 2 * time.Millisecond},
		{Size: 5000, Elapsed: 0},
	}})
	assert.False(t, ok)
}

func TestMetrics(t *testing.T) {
	m := bench.NewMetrics()
	m.Observe("radix", 1000, time.Millisecond)
	m.Observe("radix", 5000, 3*time.Millisecond)
	m.Observe("merge", 1000, 2*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Gatherer(), "sortbench_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	path := filepath.Join(t.TempDir(), "sortbench.prom")
	require.NoError(t, m.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sortbench_elements_total{series="radix"} 6000`)
	assert.Contains(t, string(body), `sortbench_run_duration_seconds_count{series="merge"} 1`)
}

func TestHostInfo(t *testing.T) {
	h := bench.HostInfo()
	assert.NotEmpty(t, h.OS)
	assert.NotEmpty(t, h.Arch)
	assert.Positive(t, h.CPUs)
}

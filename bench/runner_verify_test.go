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
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sortedCopy(data []int64) []int64 {
	out := slices.Clone(data)
	slices.Sort(out)
	return out
}

func TestRunner_VerifyRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		sort sortFunc
	}{
		{"descending", func(data []int64) ([]int64, error) {
			out := sortedCopy(data)
			slices.Reverse(out)
			return out, nil
		}},
		{"short", func(data []int64) ([]int64, error) {
			out := sortedCopy(data)
			return out[:len(out)-1], nil
		}},
		{"long", func(data []int64) ([]int64, error) {
			return append(sortedCopy(data), 1<<40), nil
		}},
		{"not a permutation", func(data []int64) ([]int64, error) {
			return make([]int64, len(data)), nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Sizes = []int{10, 100}
			cfg.Algorithms = []string{"radix", "merge"}
			cfg.MaxValue = 1_000_000
			cfg.Seed = 1
			cfg.Verify = true

			r, err := NewRunner(cfg, WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, err)
			defer r.Close()
			r.sorters[Merge] = tt.sort

			series, err := r.RunSorts(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsorted), "got %v", err)
			assert.Contains(t, err.Error(), "merge: size 10")
			assert.Nil(t, series)
		})
	}
}

func TestRunner_VerifyOff(t *testing.T) {
	cfg := NewConfig()
	cfg.Sizes = []int{10}
	cfg.Algorithms = []string{"merge"}
	cfg.Seed = 1

	r, err := NewRunner(cfg)
	require.NoError(t, err)
	defer r.Close()
	r.sorters[Merge] = func(data []int64) ([]int64, error) {
		return make([]int64, len(data)), nil
	}

	series, err := r.RunSorts(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "Merge Sort", series[0].Name)
}

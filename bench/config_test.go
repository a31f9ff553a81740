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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-sortbench/bench"
)

func TestNewConfig_Valid(t *testing.T) {
	c := bench.NewConfig()
	require.NoError(t, c.Validate())

	algorithms, err := c.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []bench.Algorithm{bench.Radix, bench.Selection, bench.Merge, bench.Bucket}, algorithms)
	assert.Equal(t, bench.DefaultSelectionMaxSize, c.MaxSizes["selection"])
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortbench.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
sizes = [10, 20]
algorithms = ["merge", "radix", "merge"]
buckets = 4
seed = 42
verify = true

[max-sizes]
merge = 15

[logging]
format = "json"
level = "debug"
`), 0o644))

	c, err := bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, c.Sizes)
	assert.Equal(t, 4, c.Buckets)
	assert.Equal(t, uint64(42), c.Seed)
	assert.True(t, c.Verify)
	assert.Equal(t, 15, c.MaxSizes["merge"])
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, zapcore.DebugLevel, c.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, bench.DefaultOutput, c.Output)

	algorithms, err := c.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []bench.Algorithm{bench.Merge, bench.Radix}, algorithms)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortbench.toml")
	require.NoError(t, os.WriteFile(path, []byte("sizez = [1]\n"), 0o644))

	_, err := bench.LoadConfig(path)
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := bench.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	c := bench.NewConfig()
	c.Sizes = []int{100, -1}
	c.Algorithms = []string{"radix", "bogo"}
	c.Complexities = []string{"n!"}
	c.Buckets = -2
	c.Workers = -1
	c.MaxSizes = map[string]int{"quick": 10}

	err := c.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 6)
	assert.ErrorContains(t, err, `unknown algorithm "bogo"`)
	assert.ErrorContains(t, err, `unknown complexity "n!"`)
	assert.ErrorContains(t, err, "sizes: -1 is not positive")
}

func TestValidate_NoSizes(t *testing.T) {
	c := bench.NewConfig()
	c.Sizes = nil
	assert.ErrorContains(t, c.Validate(), "at least one size")
}

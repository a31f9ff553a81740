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
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/ajroetker/go-sortbench/logger"
)

const (
	// DefaultOutput is the text report written by the sort sweeps.
	DefaultOutput = "sort_times.txt"

	// DefaultChart is the chart rendered by the sort sweeps.
	DefaultChart = "plot.png"

	// DefaultComplexityOutput is the text report written by the complexity sweeps.
	DefaultComplexityOutput = "complexity_times.txt"

	// DefaultComplexityChart is the chart rendered by the complexity sweeps.
	DefaultComplexityChart = "complexity.png"

	// DefaultSelectionMaxSize caps selection sort sweeps; past it a single
	// O(n²) run takes minutes.
	DefaultSelectionMaxSize = 100000

	// DefaultComplexityMaxValue bounds the candidates fed to the hiring loop.
	DefaultComplexityMaxValue = 10000
)

// Config is the sortbench configuration.
type Config struct {
	// Sizes are the input lengths swept for every algorithm.
	Sizes []int `toml:"sizes"`
	// Algorithms names the sorts to time, see ParseAlgorithm.
	Algorithms []string `toml:"algorithms"`
	// MaxSizes caps the sweep per algorithm name. Larger sizes are skipped.
	MaxSizes map[string]int `toml:"max-sizes"`
	// MaxValue bounds generated values to [0, MaxValue]. Zero means the
	// input size is used as the bound.
	MaxValue int64 `toml:"max-value"`
	// Buckets is the bucket count for bucket sort. Zero picks ceil(n/16).
	Buckets int `toml:"buckets"`

	// Complexities names the dummy routines to time, see ParseComplexity.
	Complexities []string `toml:"complexities"`
	// ComplexitySizes are the input lengths swept for every complexity class.
	ComplexitySizes []int `toml:"complexity-sizes"`
	// ComplexityMaxValue bounds the hiring loop candidates.
	ComplexityMaxValue int64 `toml:"complexity-max-value"`

	// Seed seeds the input generator. Zero picks a random seed per run.
	Seed uint64 `toml:"seed"`
	// Workers is how many sweeps may run at once.
	Workers int `toml:"workers"`
	// Verify checks every sort result against a slices.Sort of the same
	// input before it is recorded. The check runs outside the timed region.
	Verify bool `toml:"verify"`

	Output           string `toml:"output"`
	ComplexityOutput string `toml:"complexity-output"`
	YAML             string `toml:"yaml"`
	Chart            string `toml:"chart"`
	ComplexityChart  string `toml:"complexity-chart"`
	Metrics          string `toml:"metrics"`

	Logging logger.Config `toml:"logging"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		Sizes:              []int{1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		Algorithms:         []string{"radix", "selection", "merge", "bucket"},
		MaxSizes:           map[string]int{Selection.String(): DefaultSelectionMaxSize},
		Complexities:       []string{"n", "logn", "nlogn"},
		ComplexitySizes:    []int{1000, 10000, 100000, 1000000},
		ComplexityMaxValue: DefaultComplexityMaxValue,
		Workers:            1,
		Output:             DefaultOutput,
		ComplexityOutput:   DefaultComplexityOutput,
		Chart:              DefaultChart,
		ComplexityChart:    DefaultComplexityChart,
		Logging:            logger.NewConfig(),
	}
}

// LoadConfig decodes the TOML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	c := NewConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	return c, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var err error

	if len(c.Sizes) == 0 {
		err = multierr.Append(err, errors.New("sizes: at least one size is required"))
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			err = multierr.Append(err, fmt.Errorf("sizes: %d is not positive", n))
		}
	}
	for _, n := range c.ComplexitySizes {
		if n <= 0 {
			err = multierr.Append(err, fmt.Errorf("complexity-sizes: %d is not positive", n))
		}
	}
	if _, e := c.ParsedAlgorithms(); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := c.ParsedComplexities(); e != nil {
		err = multierr.Append(err, e)
	}
	for name, n := range c.MaxSizes {
		if _, e := ParseAlgorithm(name); e != nil {
			err = multierr.Append(err, fmt.Errorf("max-sizes: %w", e))
		}
		if n < 0 {
			err = multierr.Append(err, fmt.Errorf("max-sizes: %s: %d is negative", name, n))
		}
	}
	if c.MaxValue < 0 {
		err = multierr.Append(err, fmt.Errorf("max-value: %d is negative", c.MaxValue))
	}
	if c.ComplexityMaxValue < 0 {
		err = multierr.Append(err, fmt.Errorf("complexity-max-value: %d is negative", c.ComplexityMaxValue))
	}
	if c.Buckets < 0 {
		err = multierr.Append(err, fmt.Errorf("buckets: %d is negative", c.Buckets))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers: %d is negative", c.Workers))
	}
	return err
}

// ParsedAlgorithms resolves c.Algorithms, dropping repeats.
func (c Config) ParsedAlgorithms() ([]Algorithm, error) {
	var err error
	algorithms := lo.FilterMap(lo.Uniq(c.Algorithms), func(name string, _ int) (Algorithm, bool) {
		a, e := ParseAlgorithm(name)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("algorithms: %w", e))
			return 0, false
		}
		return a, true
	})
	return algorithms, err
}

// ParsedComplexities resolves c.Complexities, dropping repeats.
func (c Config) ParsedComplexities() ([]Complexity, error) {
	var err error
	complexities := lo.FilterMap(lo.Uniq(c.Complexities), func(name string, _ int) (Complexity, bool) {
		cx, e := ParseComplexity(name)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("complexities: %w", e))
			return 0, false
		}
		return cx, true
	})
	return complexities, err
}

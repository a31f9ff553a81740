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
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/ajroetker/go-sortbench/sorts/workerpool"
)

// ErrUnsorted is returned when Verify is set and a sort result is not its
// input in non-decreasing order.
var ErrUnsorted = errors.New("bench: sort output is not its sorted input")

// autoBucketDivisor sets the automatic bucket count to ceil(n/16).
const autoBucketDivisor = 16

// sortFunc sorts data and returns the sorted slice, which is data itself for
// the in-place algorithms.
type sortFunc func(data []int64) ([]int64, error)

// Runner times the configured algorithms and complexity classes.
type Runner struct {
	cfg          Config
	algorithms   []Algorithm
	complexities []Complexity
	maxSizes     map[Algorithm]int
	sorters      [numAlgorithms]sortFunc
	seed         uint64

	timer   *Timer
	metrics *Metrics
	pool    *workerpool.Pool
	logger  *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.logger = log }
}

// WithClock sets the clock runs are timed with.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) { r.timer = NewTimer(c) }
}

// WithMetrics records every run in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner validates cfg and returns a Runner for it. Close releases the
// worker pool used by the parallel merge sort.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	algorithms, _ := cfg.ParsedAlgorithms()
	complexities, _ := cfg.ParsedComplexities()

	r := &Runner{
		cfg:          cfg,
		algorithms:   algorithms,
		complexities: complexities,
		maxSizes:     make(map[Algorithm]int, len(cfg.MaxSizes)),
		seed:         cfg.Seed,
		timer:        NewTimer(nil),
		logger:       zap.NewNop(),
	}
	for name, n := range cfg.MaxSizes {
		a, _ := ParseAlgorithm(name)
		r.maxSizes[a] = n
	}
	if r.seed == 0 {
		r.seed = rand.Uint64()
	}
	for _, opt := range opts {
		opt(r)
	}

	if slices.Contains(algorithms, MergeParallel) {
		r.pool = workerpool.New(0)
	}
	r.sorters = [numAlgorithms]sortFunc{
		Selection: func(data []int64) ([]int64, error) {
			sorts.SelectionSort(data)
			return data, nil
		},
		Merge: func(data []int64) ([]int64, error) {
			return sorts.MergeSort(data), nil
		},
		MergeParallel: func(data []int64) ([]int64, error) {
			return sorts.MergeSortParallel(r.pool, data), nil
		},
		Radix: func(data []int64) ([]int64, error) {
			return data, sorts.RadixSortBase10(data)
		},
		Bucket: func(data []int64) ([]int64, error) {
			return data, sorts.BucketSort(data, r.buckets(len(data)))
		},
		Stdlib: func(data []int64) ([]int64, error) {
			slices.Sort(data)
			return data, nil
		},
	}
	return r, nil
}

// Close releases the Runner's worker pool.
func (r *Runner) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Seed returns the generator seed in use, which is random when the config
// left it zero.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// RunSorts sweeps the configured sizes for every configured algorithm and
// returns one Series per algorithm in configured order. Every algorithm sees
// the same input for a given size.
func (r *Runner) RunSorts(ctx context.Context) ([]Series, error) {
	return runSweeps(ctx, r.cfg.Workers, r.algorithms, r.sweepSort)
}

// RunComplexities sweeps the configured complexity sizes for every
// configured complexity class and returns one Series per class in configured
// order.
func (r *Runner) RunComplexities(ctx context.Context) ([]Series, error) {
	return runSweeps(ctx, r.cfg.Workers, r.complexities, r.sweepComplexity)
}

// runSweeps runs sweep for every item on its own goroutine, at most workers
// at a time. Each sweep returns its Series into a slot only it writes.
func runSweeps[T fmt.Stringer](ctx context.Context, workers int, items []T, sweep func(context.Context, T) (Series, error)) ([]Series, error) {
	results := make([]Series, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, item := range items {
		g.Go(func() error {
			s, err := sweep(ctx, item)
			if err != nil {
				return fmt.Errorf("%s: %w", item, err)
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) sweepSort(ctx context.Context, a Algorithm) (Series, error) {
	log := r.logger.With(zap.Stringer("algorithm", a))
	s := Series{Name: a.Title()}
	limit := r.maxSizes[a]

	for _, n := range r.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		if limit > 0 && n > limit {
			log.Debug("Skipping size above limit", zap.Int("size", n), zap.Int("limit", limit))
			continue
		}

		data, err := r.input(n, r.maxValue(n))
		if err != nil {
			return s, err
		}

		var want []int64
		if r.cfg.Verify {
			want = slices.Clone(data)
			slices.Sort(want)
		}

		var out []int64
		elapsed, err := r.timer.Time(func() error {
			var err error
			out, err = r.sorters[a](data)
			return err
		})
		if err != nil {
			return s, fmt.Errorf("size %d: %w", n, err)
		}
		if r.cfg.Verify && !slices.Equal(out, want) {
			if !sorts.IsSorted(out) {
				return s, fmt.Errorf("size %d: out of order: %w", n, ErrUnsorted)
			}
			return s, fmt.Errorf("size %d: %d elements, not a permutation of the input: %w", n, len(out), ErrUnsorted)
		}

		s.Points = append(s.Points, Point{Size: n, Elapsed: elapsed})
		if r.metrics != nil {
			r.metrics.Observe(a.String(), n, elapsed)
		}
		log.Info("Sorted",
			zap.String("size", humanize.Comma(int64(n))),
			zap.Duration("elapsed", elapsed))
	}
	return s, nil
}

func (r *Runner) sweepComplexity(ctx context.Context, c Complexity) (Series, error) {
	log := r.logger.With(zap.Stringer("complexity", c))
	s := Series{Name: c.Title()}

	for _, n := range r.cfg.ComplexitySizes {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		data, err := r.input(n, r.cfg.ComplexityMaxValue)
		if err != nil {
			return s, err
		}

		var res HireResult
		elapsed, _ := r.timer.Time(func() error {
			res = Hire(data, c)
			return nil
		})

		s.Points = append(s.Points, Point{Size: n, Elapsed: elapsed})
		if r.metrics != nil {
			r.metrics.Observe(c.String(), n, elapsed)
		}
		log.Info("Hired",
			zap.String("size", humanize.Comma(int64(n))),
			zap.Int("hires", res.Hires),
			zap.Int64("best", res.Best),
			zap.Duration("elapsed", elapsed))
		log.Debug("Routine work", zap.Int64("work", res.Work))
	}
	return s, nil
}

// input generates the input of length n. The stream is keyed by n so that
// skipped sizes do not shift later inputs.
func (r *Runner) input(n int, maxVal int64) ([]int64, error) {
	return NewGenerator(r.seed, uint64(n)).Ints(n, maxVal)
}

func (r *Runner) maxValue(n int) int64 {
	if r.cfg.MaxValue > 0 {
		return r.cfg.MaxValue
	}
	return int64(n)
}

func (r *Runner) buckets(n int) int {
	if r.cfg.Buckets > 0 {
		return r.cfg.Buckets
	}
	return max(1, (n+autoBucketDivisor-1)/autoBucketDivisor)
}

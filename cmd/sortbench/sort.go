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

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/report"
)

const chartTitle = "Time Complexity Comparisons"

func newSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Time the sorting algorithms over every input size",
		Args:  cobra.NoArgs,
		RunE:  runSort,
	}
	fs := cmd.Flags()
	fs.StringSlice("sizes", nil, "Input sizes to sweep, comma separated.")
	fs.StringSlice("algorithms", nil, "Algorithms to time: selection, merge, merge-parallel, radix, bucket, stdlib.")
	fs.Int64("max-value", 0, "Largest generated value. 0 uses the input size.")
	fs.Int("buckets", 0, "Bucket count for bucket sort. 0 picks ceil(n/16).")
	fs.Uint64("seed", 0, "Input generator seed. 0 picks a random seed.")
	fs.Int("workers", 1, "Number of algorithms timed at once.")
	fs.Bool("verify", false, "Check every result is sorted.")
	fs.String("output", bench.DefaultOutput, "Text report path. Empty disables it.")
	fs.String("yaml", "", "YAML report path.")
	fs.String("chart", bench.DefaultChart, "Chart path; png, svg or pdf. Empty disables it.")
	fs.String("metrics", "", "Prometheus textfile path.")
	return cmd
}

func applySortFlags(f *flags, cfg *bench.Config) {
	f.Ints("sizes", &cfg.Sizes)
	f.Strings("algorithms", &cfg.Algorithms)
	f.Int64("max-value", &cfg.MaxValue)
	f.Int("buckets", &cfg.Buckets)
	f.Uint64("seed", &cfg.Seed)
	f.Int("workers", &cfg.Workers)
	f.Bool("verify", &cfg.Verify)
	f.String("output", &cfg.Output)
	f.String("yaml", &cfg.YAML)
	f.String("chart", &cfg.Chart)
	f.String("metrics", &cfg.Metrics)
}

func runSort(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, applySortFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	metrics := bench.NewMetrics()
	r, err := bench.NewRunner(cfg, bench.WithLogger(log), bench.WithMetrics(metrics))
	if err != nil {
		return err
	}
	defer r.Close()

	log.Info("Running sort sweeps", zap.Uint64("seed", r.Seed()), zap.Strings("algorithms", cfg.Algorithms))
	series, err := r.RunSorts(cmd.Context())
	if err != nil {
		return err
	}
	logFits(log, series)

	if cfg.Output != "" {
		if err := report.WriteTextFile(cfg.Output, series); err != nil {
			return err
		}
		log.Info("Wrote text report", zap.String("path", cfg.Output))
	}
	if cfg.YAML != "" {
		doc := report.NewDocument(bench.HostInfo(), r.Seed(), series)
		if err := report.WriteYAMLFile(cfg.YAML, doc); err != nil {
			return err
		}
		log.Info("Wrote YAML report", zap.String("path", cfg.YAML))
	}
	if cfg.Chart != "" {
		if err := report.NewChart(chartTitle).Save(cfg.Chart, series); err != nil {
			return err
		}
		log.Info("Wrote chart", zap.String("path", cfg.Chart))
	}
	if cfg.Metrics != "" {
		if err := metrics.WriteTextfile(cfg.Metrics); err != nil {
			return err
		}
		log.Info("Wrote metrics", zap.String("path", cfg.Metrics))
	}
	return nil
}

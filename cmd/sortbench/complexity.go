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

func newComplexityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complexity",
		Short: "Time the reference O(n), O(log n) and O(n log n) routines",
		Long: `Time the reference routines through a hiring loop: a candidate that beats
the best so far is hired and the routine runs over the whole input.`,
		Args: cobra.NoArgs,
		RunE: runComplexity,
	}
	fs := cmd.Flags()
	fs.StringSlice("complexities", nil, "Classes to time: n, logn, nlogn.")
	fs.StringSlice("sizes", nil, "Input sizes to sweep, comma separated.")
	fs.Int64("max-value", bench.DefaultComplexityMaxValue, "Largest candidate value.")
	fs.Uint64("seed", 0, "Input generator seed. 0 picks a random seed.")
	fs.Int("workers", 1, "Number of classes timed at once.")
	fs.String("output", bench.DefaultComplexityOutput, "Text report path. Empty disables it.")
	fs.String("chart", bench.DefaultComplexityChart, "Chart path; png, svg or pdf. Empty disables it.")
	return cmd
}

func applyComplexityFlags(f *flags, cfg *bench.Config) {
	f.Strings("complexities", &cfg.Complexities)
	f.Ints("sizes", &cfg.ComplexitySizes)
	f.Int64("max-value", &cfg.ComplexityMaxValue)
	f.Uint64("seed", &cfg.Seed)
	f.Int("workers", &cfg.Workers)
	f.String("output", &cfg.ComplexityOutput)
	f.String("chart", &cfg.ComplexityChart)
}

func runComplexity(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, applyComplexityFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	r, err := bench.NewRunner(cfg, bench.WithLogger(log))
	if err != nil {
		return err
	}
	defer r.Close()

	log.Info("Running complexity sweeps", zap.Uint64("seed", r.Seed()), zap.Strings("complexities", cfg.Complexities))
	series, err := r.RunComplexities(cmd.Context())
	if err != nil {
		return err
	}
	logFits(log, series)

	if cfg.ComplexityOutput != "" {
		if err := report.WriteTextFile(cfg.ComplexityOutput, series); err != nil {
			return err
		}
		log.Info("Wrote text report", zap.String("path", cfg.ComplexityOutput))
	}
	if cfg.ComplexityChart != "" {
		if err := report.NewChart(chartTitle).Save(cfg.ComplexityChart, series); err != nil {
			return err
		}
		log.Info("Wrote chart", zap.String("path", cfg.ComplexityChart))
	}
	return nil
}

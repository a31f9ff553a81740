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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/bench"
)

// envPrefix prefixes the environment variable of every flag, so --log-level
// may also be given as SORTBENCH_LOG_LEVEL.
const envPrefix = "SORTBENCH"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sortbench",
		Short:         "Time sorting algorithms over growing random inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "", "Path to a TOML config file.")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error.")
	cmd.PersistentFlags().String("log-format", "", "Log format: auto, logfmt, json or console.")

	cmd.AddCommand(
		newSortCommand(),
		newComplexityCommand(),
		newConfigCommand(),
	)
	return cmd
}

// flags resolves the options of one command invocation. A value is taken
// from the command line when the flag was given, else from the environment,
// else the config file or default is left alone.
type flags struct {
	set *pflag.FlagSet
	v   *viper.Viper
	err error
}

func newFlags(cmd *cobra.Command) (*flags, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return &flags{set: cmd.Flags(), v: v}, nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func (f *flags) isSet(key string) bool {
	if f.err != nil {
		return false
	}
	if fl := f.set.Lookup(key); fl != nil && fl.Changed {
		return true
	}
	// viper ignores empty environment variables.
	return os.Getenv(envName(key)) != ""
}

func (f *flags) fail(key string, err error) {
	f.err = fmt.Errorf("--%s: %w", key, err)
}

func (f *flags) String(key string, dst *string) {
	if f.isSet(key) {
		*dst = f.v.GetString(key)
	}
}

func (f *flags) Bool(key string, dst *bool) {
	if f.isSet(key) {
		*dst = f.v.GetBool(key)
	}
}

func (f *flags) Int(key string, dst *int) {
	if !f.isSet(key) {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(f.v.GetString(key)))
	if err != nil {
		f.fail(key, err)
		return
	}
	*dst = n
}

func (f *flags) Int64(key string, dst *int64) {
	if !f.isSet(key) {
		return
	}
	n, err := strconv.ParseInt(strings.TrimSpace(f.v.GetString(key)), 10, 64)
	if err != nil {
		f.fail(key, err)
		return
	}
	*dst = n
}

func (f *flags) Uint64(key string, dst *uint64) {
	if !f.isSet(key) {
		return
	}
	n, err := strconv.ParseUint(strings.TrimSpace(f.v.GetString(key)), 10, 64)
	if err != nil {
		f.fail(key, err)
		return
	}
	*dst = n
}

// Strings reads a comma separated list. Flags may be repeated.
func (f *flags) Strings(key string, dst *[]string) {
	if !f.isSet(key) {
		return
	}
	*dst = lo.FlatMap(f.v.GetStringSlice(key), func(s string, _ int) []string {
		return lo.Compact(lo.Map(strings.Split(s, ","), func(part string, _ int) string {
			return strings.TrimSpace(part)
		}))
	})
}

func (f *flags) Ints(key string, dst *[]int) {
	var raw []string
	f.Strings(key, &raw)
	if raw == nil || f.err != nil {
		return
	}
	ints := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			f.fail(key, err)
			return
		}
		ints = append(ints, n)
	}
	*dst = ints
}

// loadConfig returns the config file named by --config, or the defaults,
// with the common flags applied. apply sets the command's own flags.
func loadConfig(cmd *cobra.Command, apply func(f *flags, cfg *bench.Config)) (bench.Config, error) {
	f, err := newFlags(cmd)
	if err != nil {
		return bench.Config{}, err
	}

	cfg := bench.NewConfig()
	var path string
	f.String("config", &path)
	if path != "" {
		if cfg, err = bench.LoadConfig(path); err != nil {
			return bench.Config{}, err
		}
	}

	f.String("log-format", &cfg.Logging.Format)
	if f.isSet("log-level") {
		if err := cfg.Logging.Level.UnmarshalText([]byte(f.v.GetString("log-level"))); err != nil {
			f.fail("log-level", err)
		}
	}
	if apply != nil {
		apply(f, &cfg)
	}
	if f.err != nil {
		return bench.Config{}, f.err
	}
	return cfg, nil
}

// newLogger builds the command's logger and records the host it runs on.
func newLogger(cmd *cobra.Command, cfg bench.Config) (*zap.Logger, error) {
	log, err := cfg.Logging.New(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	host := bench.HostInfo()
	log.Info("Starting sortbench",
		zap.String("command", cmd.Name()),
		zap.String("os", host.OS),
		zap.String("arch", host.Arch),
		zap.Int("cpus", host.CPUs),
		zap.Strings("features", host.Features),
	)
	return log, nil
}

// logFits records the fitted growth exponent of every series.
func logFits(log *zap.Logger, series []bench.Series) {
	for _, s := range series {
		if exp, ok := bench.Fit(s); ok {
			log.Info("Fitted growth", zap.String("series", s.Name), zap.Float64("exponent", exp))
		}
	}
}

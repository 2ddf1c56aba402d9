// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/binormal/utils/logging"
	"github.com/ava-labs/binormal/version"
)

const (
	SamplerKey  = "sampler"
	SeedKey     = "seed"
	OutputKey   = "output"
	LogLevelKey = "log-level"
	SummaryKey  = "summary"
	MetricsKey  = "metrics"

	// Sampling strategies
	SamplerGibbs = "gibbs"
	SamplerExact = "exact"
)

var (
	validSamplers = []string{SamplerGibbs, SamplerExact}

	errMissingArguments = errors.New("expected positional arguments <n> <rho>")
	errUnknownSampler   = fmt.Errorf("sampler must be one of %v", validSamplers)
)

// Config is the result of parsing the CLI surface: the two positional
// arguments plus optional flags, each of which is also settable through a
// BINORMAL_* environment variable.
type Config struct {
	Sampler     string
	SampleCount int
	Correlation float64

	// Seeded reports whether Seed should be applied to the random source.
	Seeded bool
	Seed   uint64

	// OutputPath is the sample destination; empty means stdout.
	OutputPath string

	LogLevel logging.Level
	Summary  bool
	Metrics  bool
}

// BuildFlagSet returns the optional-flag surface. The two positional
// arguments remain the primary interface.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.Client, pflag.ContinueOnError)
	fs.String(SamplerKey, SamplerGibbs, fmt.Sprintf("sampling strategy, one of %v", validSamplers))
	fs.Int64(SeedKey, -1, "seed for the random source; non-negative values make output reproducible")
	fs.String(OutputKey, "", "write samples to this file instead of stdout")
	fs.String(LogLevelKey, logging.Info.String(), "log verbosity {OFF, FATAL, ERROR, WARN, INFO, DEBUG}")
	fs.Bool(SummaryKey, false, "log marginal means, correlation, and lag-1 autocorrelation of the output")
	fs.Bool(MetricsKey, false, "collect and log prometheus sampling metrics")
	return fs
}

// BuildViper returns the viper environment bound to [fs].
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(version.Client)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// New parses the positional arguments [args] and the settings in [v] into a
// Config. Statistical parameter validation is owned by the samplers; here we
// only require that the arguments are numbers.
func New(v *viper.Viper, args []string) (Config, error) {
	if len(args) != 2 {
		return Config{}, fmt.Errorf("%w but got %d arguments", errMissingArguments, len(args))
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse sample count %q: %w", args[0], err)
	}
	rho, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse correlation %q: %w", args[1], err)
	}

	samplerKind := v.GetString(SamplerKey)
	if !slices.Contains(validSamplers, samplerKind) {
		return Config{}, fmt.Errorf("%w but got %q", errUnknownSampler, samplerKind)
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Sampler:     samplerKind,
		SampleCount: n,
		Correlation: rho,
		OutputPath:  v.GetString(OutputKey),
		LogLevel:    logLevel,
		Summary:     v.GetBool(SummaryKey),
		Metrics:     v.GetBool(MetricsKey),
	}
	if seed := v.GetInt64(SeedKey); seed >= 0 {
		cfg.Seeded = true
		cfg.Seed = uint64(seed)
	}
	return cfg, nil
}

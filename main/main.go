// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/binormal/config"
	"github.com/ava-labs/binormal/sampler"
	"github.com/ava-labs/binormal/sampler/metered"
	"github.com/ava-labs/binormal/utils/formatting"
	"github.com/ava-labs/binormal/utils/logging"
	"github.com/ava-labs/binormal/utils/stats"
	"github.com/ava-labs/binormal/version"
)

func main() {
	rootCmd := newCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "binormal failed %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "binormal <n> <rho>",
		Short:        "Draw bivariate normal samples directly or via Gibbs sampling",
		Long: "Draws n samples from the bivariate normal distribution with zero " +
			"means, unit marginal variances, and correlation rho, writing one " +
			"'x y' pair per line. The gibbs strategy runs a Markov chain of " +
			"coordinate-wise conditional draws; the exact strategy draws " +
			"independent samples from the closed-form factorization.",
		Args:         cobra.ExactArgs(2),
		Version:      version.Current.String(),
		RunE:         runFunc,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().AddFlagSet(config.BuildFlagSet())
	return cmd
}

func runFunc(cmd *cobra.Command, args []string) error {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.New(v, args)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(version.Client, cfg.LogLevel, cmd.ErrOrStderr())
	defer logger.Stop()

	out := cmd.OutOrStdout()
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return run(cfg, out, logger)
}

func run(cfg config.Config, out io.Writer, logger logging.Logger) error {
	var b sampler.Bivariate
	switch cfg.Sampler {
	case config.SamplerExact:
		b = sampler.NewExact()
	default:
		b = sampler.NewGibbs()
	}

	registry := prometheus.NewRegistry()
	if cfg.Metrics {
		var err error
		b, err = metered.New(version.Client, registry, b)
		if err != nil {
			return err
		}
	}

	if err := b.Initialize(cfg.Correlation); err != nil {
		return err
	}
	if cfg.Seeded {
		b.Seed(cfg.Seed)
	}

	logger.Info("sampling",
		zap.String("sampler", cfg.Sampler),
		zap.Int("n", cfg.SampleCount),
		zap.Float64("rho", cfg.Correlation),
	)

	start := time.Now()
	samples, err := b.Sample(cfg.SampleCount)
	if err != nil {
		return err
	}
	logger.Debug("sampling complete",
		zap.Duration("duration", time.Since(start)),
	)

	if err := formatting.WriteSamples(out, samples); err != nil {
		return err
	}

	if cfg.Summary {
		xs, ys := sampler.Marginals(samples)
		logger.Info("sequence summary",
			zap.Float64("xMean", stats.Mean(xs)),
			zap.Float64("yMean", stats.Mean(ys)),
			zap.Float64("correlation", stats.Correlation(xs, ys)),
			zap.Float64("xLag1Autocorrelation", stats.Lag1Autocorrelation(xs)),
		)
	}

	if cfg.Metrics {
		families, err := registry.Gather()
		if err != nil {
			return err
		}
		for _, family := range families {
			logger.Info("metric",
				zap.String("name", family.GetName()),
				zap.String("value", family.String()),
			)
		}
	}
	return nil
}

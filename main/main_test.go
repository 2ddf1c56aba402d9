// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/binormal/config"
	"github.com/ava-labs/binormal/sampler"
	"github.com/ava-labs/binormal/utils/formatting"
	"github.com/ava-labs/binormal/utils/logging"
)

func testConfig(samplerKind string, n int, rho float64) config.Config {
	return config.Config{
		Sampler:     samplerKind,
		SampleCount: n,
		Correlation: rho,
		Seeded:      true,
		Seed:        42,
		LogLevel:    logging.Off,
	}
}

func TestRunGibbsWritesChain(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.NoError(run(testConfig(config.SamplerGibbs, 10, .8), &out, logging.NoLog{}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(lines, 10)
	require.Equal("0.000 0.000", lines[0])
}

func TestRunExactWritesSequence(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.NoError(run(testConfig(config.SamplerExact, 25, -.5), &out, logging.NoLog{}))

	samples, err := formatting.ParseSamples(&out)
	require.NoError(err)
	require.Len(samples, 25)
}

func TestRunSeededIsReproducible(t *testing.T) {
	require := require.New(t)

	cfg := testConfig(config.SamplerGibbs, 100, .8)

	var first, second bytes.Buffer
	require.NoError(run(cfg, &first, logging.NoLog{}))
	require.NoError(run(cfg, &second, logging.NoLog{}))
	require.Equal(first.String(), second.String())
}

func TestRunInvalidParameters(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer

	err := run(testConfig(config.SamplerGibbs, 10, 1), &out, logging.NoLog{})
	require.ErrorIs(err, sampler.ErrInvalidCorrelation)
	require.Zero(out.Len())

	err = run(testConfig(config.SamplerExact, 0, .5), &out, logging.NoLog{})
	require.ErrorIs(err, sampler.ErrInvalidSampleCount)
	require.Zero(out.Len())
}

func TestRunWithMetrics(t *testing.T) {
	require := require.New(t)

	cfg := testConfig(config.SamplerGibbs, 10, .8)
	cfg.Metrics = true
	cfg.Summary = true

	var out bytes.Buffer
	require.NoError(run(cfg, &out, logging.NoLog{}))

	samples, err := formatting.ParseSamples(&out)
	require.NoError(err)
	require.Len(samples, 10)
}

func TestCommandRejectsWrongArgCount(t *testing.T) {
	require := require.New(t)

	cmd := newCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"100"})
	require.Error(cmd.Execute())
}

func TestCommandEndToEnd(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"5", "0.8", "--seed=7", "--log-level=off"})
	require.NoError(cmd.Execute())

	samples, err := formatting.ParseSamples(&out)
	require.NoError(err)
	require.Len(samples, 5)
	require.Equal(sampler.Sample{}, samples[0])
}

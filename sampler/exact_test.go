// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/binormal/utils/stats"
)

func TestExactConditionalLaw(t *testing.T) {
	require := require.New(t)

	const rho = .6
	sd := math.Sqrt(1 - rho*rho)

	s := &exact{}
	require.NoError(s.Initialize(rho))
	s.gaussian = &fixedGaussian{values: []float64{1.25, -.5, 0, 2}}

	// Each draw consumes two variates: z1 becomes X and Y = rho*X + sd*z2.
	samples, err := s.Sample(2)
	require.NoError(err)
	require.Equal([]Sample{
		{X: 1.25, Y: rho*1.25 + sd*-.5},
		{X: 0, Y: sd * 2},
	}, samples)
}

func TestExactSingleDraw(t *testing.T) {
	require := require.New(t)

	s := NewExact()
	require.NoError(s.Initialize(.9))

	samples, err := s.Sample(1)
	require.NoError(err)
	require.Len(samples, 1)
	require.False(math.IsNaN(samples[0].X))
	require.False(math.IsNaN(samples[0].Y))
}

func TestExactStationaryStatistics(t *testing.T) {
	require := require.New(t)

	const (
		n   = 100_000
		rho = .8
	)

	s := NewExact()
	require.NoError(s.Initialize(rho))
	s.Seed(1)

	samples, err := s.Sample(n)
	require.NoError(err)

	xs, ys := Marginals(samples)
	require.InDelta(0, stats.Mean(xs), .05)
	require.InDelta(0, stats.Mean(ys), .05)
	require.InDelta(rho, stats.Correlation(xs, ys), .05)
}

func TestExactDrawsAreSeriallyIndependent(t *testing.T) {
	require := require.New(t)

	const (
		n   = 100_000
		rho = .98
	)

	s := NewExact()
	require.NoError(s.Initialize(rho))
	s.Seed(7)

	samples, err := s.Sample(n)
	require.NoError(err)

	xs, _ := Marginals(samples)
	require.InDelta(0, stats.Lag1Autocorrelation(xs), .05)
}

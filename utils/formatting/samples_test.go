// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/binormal/sampler"
)

func TestWriteSamples(t *testing.T) {
	require := require.New(t)

	var sb strings.Builder
	require.NoError(WriteSamples(&sb, []sampler.Sample{
		{X: 0, Y: 0},
		{X: 1.23456, Y: -0.98765},
		{X: -0.0004, Y: 2},
	}))

	require.Equal(
		"0.000 0.000\n1.235 -0.988\n-0.000 2.000\n",
		sb.String(),
	)
}

func TestParseSamples(t *testing.T) {
	require := require.New(t)

	samples, err := ParseSamples(strings.NewReader("0.000 0.000\n1.235 -0.988\n\n-0.500 2.000\n"))
	require.NoError(err)
	require.Equal([]sampler.Sample{
		{X: 0, Y: 0},
		{X: 1.235, Y: -.988},
		{X: -.5, Y: 2},
	}, samples)
}

func TestParseSamplesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "one field", input: "1.000\n"},
		{name: "three fields", input: "1.000 2.000 3.000\n"},
		{name: "not a number", input: "1.000 abc\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseSamples(strings.NewReader(test.input))
			require.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	s := sampler.NewGibbs()
	require.NoError(s.Initialize(.8))
	s.Seed(42)

	samples, err := s.Sample(100)
	require.NoError(err)

	var sb strings.Builder
	require.NoError(WriteSamples(&sb, samples))

	parsed, err := ParseSamples(strings.NewReader(sb.String()))
	require.NoError(err)
	require.Len(parsed, len(samples))
	for i, p := range parsed {
		require.InDelta(samples[i].X, p.X, .0005)
		require.InDelta(samples[i].Y, p.Y, .0005)
	}
}

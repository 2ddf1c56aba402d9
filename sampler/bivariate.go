// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSampleCount is returned when fewer than one sample is
	// requested.
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	// ErrInvalidCorrelation is returned when the correlation is outside
	// (-1, 1). At the boundaries the conditional standard deviation
	// sqrt(1-rho^2) degenerates to zero.
	ErrInvalidCorrelation = errors.New("correlation must be in (-1, 1)")

	errNotInitialized = errors.New("sampler was not initialized")
)

// Sample is one draw of the bivariate state.
type Sample struct {
	X float64
	Y float64
}

// Bivariate samples from the bivariate normal distribution with zero means,
// unit marginal variances, and the correlation provided to Initialize.
//
// Given either coordinate v, the other coordinate of an emitted Sample is
// distributed Normal(rho*v, 1-rho^2).
type Bivariate interface {
	// Initialize validates [rho] and prepares the sampler. Must be called
	// before drawing.
	Initialize(rho float64) error

	// Sample resets the sampler and emits an ordered sequence of [n] draws.
	Sample(n int) ([]Sample, error)

	// Next emits a single draw, advancing any chain state.
	Next() (Sample, error)

	// Reset returns any chain state to its initial value.
	Reset()

	Seed(uint64)
	ClearSeed()
}

// bivariate carries the target distribution parameters and the randomness
// source shared by both sampling strategies.
type bivariate struct {
	gaussian       Gaussian
	seededGaussian *gaussian

	rho float64
	// sd is the conditional standard deviation sqrt(1-rho^2) of either
	// coordinate given the other.
	sd float64
}

func (b *bivariate) Initialize(rho float64) error {
	if math.IsNaN(rho) || math.Abs(rho) >= 1 {
		return fmt.Errorf("%w but got %v", ErrInvalidCorrelation, rho)
	}

	b.gaussian = globalGaussian
	b.seededGaussian = newGaussian()
	b.rho = rho
	b.sd = math.Sqrt(1 - rho*rho)
	return nil
}

func (b *bivariate) Seed(seed uint64) {
	b.seededGaussian.seed(seed)
	b.gaussian = b.seededGaussian
}

func (b *bivariate) ClearSeed() {
	b.gaussian = globalGaussian
}

// conditional draws from Normal(rho*v, 1-rho^2), the conditional law of one
// coordinate given the other's value [v].
func (b *bivariate) conditional(v float64) float64 {
	return b.rho*v + b.sd*b.gaussian.NormFloat64()
}

// Marginals splits a sample sequence into its X and Y coordinate slices,
// preserving order.
func Marginals(samples []Sample) ([]float64, []float64) {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}
	return xs, ys
}

func checkSampleCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w but got %d", ErrInvalidSampleCount, n)
	}
	return nil
}

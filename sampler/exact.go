// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// exact draws i.i.d. samples using the closed-form factorization of the
// joint density into (marginal in X) x (conditional of Y given X).
type exact struct {
	bivariate
}

// NewExact returns a sampler that emits statistically independent draws.
func NewExact() Bivariate {
	return &exact{}
}

func (s *exact) Sample(n int) ([]Sample, error) {
	if err := checkSampleCount(n); err != nil {
		return nil, err
	}
	s.Reset()

	results := make([]Sample, n)
	for i := range results {
		draw, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = draw
	}
	return results, nil
}

func (s *exact) Next() (Sample, error) {
	if s.gaussian == nil {
		return Sample{}, errNotInitialized
	}

	x := s.gaussian.NormFloat64()
	return Sample{
		X: x,
		Y: s.conditional(x),
	}, nil
}

// Reset is a no-op as successive draws share no state.
func (*exact) Reset() {}

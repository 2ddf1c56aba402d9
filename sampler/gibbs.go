// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// gibbs draws samples by running a first-order Markov chain. Each transition
// resamples one coordinate at a time from its conditional distribution given
// the most recently updated value of the other, so successive samples are
// serially correlated.
type gibbs struct {
	bivariate

	state   Sample
	started bool
}

// NewGibbs returns a sampler whose output forms a Markov chain with the
// target bivariate normal as its stationary distribution. The chain starts
// at (0, 0) and that initial state is emitted as the first sample; no
// burn-in is discarded, so early samples are not yet distributed according
// to the stationary law.
func NewGibbs() Bivariate {
	return &gibbs{}
}

func (s *gibbs) Initialize(rho float64) error {
	if err := s.bivariate.Initialize(rho); err != nil {
		return err
	}
	s.Reset()
	return nil
}

func (s *gibbs) Sample(n int) ([]Sample, error) {
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

func (s *gibbs) Next() (Sample, error) {
	if s.gaussian == nil {
		return Sample{}, errNotInitialized
	}

	if !s.started {
		s.started = true
		return s.state, nil
	}

	// One Gibbs sweep: x conditions on the previous y, then y conditions on
	// the just-updated x. Updating sequentially rather than simultaneously
	// is what makes the chain's stationary distribution the target joint.
	s.state.X = s.conditional(s.state.Y)
	s.state.Y = s.conditional(s.state.X)
	return s.state, nil
}

func (s *gibbs) Reset() {
	s.state = Sample{}
	s.started = false
}

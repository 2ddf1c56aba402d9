// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metered decorates a sampler.Bivariate with prometheus
// instrumentation without touching its statistical behavior.
package metered

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/binormal/sampler"
)

var _ sampler.Bivariate = (*meteredSampler)(nil)

type meteredSampler struct {
	sampler.Bivariate

	metrics metrics
}

// New returns a sampler that delegates every draw to [b] while counting
// draws and sequences and timing sequence production under [namespace].
func New(
	namespace string,
	registerer prometheus.Registerer,
	b sampler.Bivariate,
) (sampler.Bivariate, error) {
	meterSampler := &meteredSampler{Bivariate: b}
	return meterSampler, meterSampler.metrics.Initialize(namespace, registerer)
}

func (s *meteredSampler) Sample(n int) ([]sampler.Sample, error) {
	start := time.Now()
	samples, err := s.Bivariate.Sample(n)
	if err != nil {
		return nil, err
	}

	s.metrics.sequences.Inc()
	s.metrics.draws.Add(float64(len(samples)))
	s.metrics.sequenceDuration.Observe(float64(time.Since(start)))
	return samples, nil
}

func (s *meteredSampler) Next() (sampler.Sample, error) {
	draw, err := s.Bivariate.Next()
	if err != nil {
		return sampler.Sample{}, err
	}

	s.metrics.draws.Inc()
	return draw, nil
}

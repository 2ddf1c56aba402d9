// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metered

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	draws,
	sequences prometheus.Counter

	sequenceDuration prometheus.Histogram
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.draws = newCounterMetric(namespace, "draw")
	m.sequences = newCounterMetric(namespace, "sequence")
	m.sequenceDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sequence_duration",
		Help:      "time (in ns) spent producing a sample sequence",
		Buckets:   prometheus.ExponentialBuckets(1000, 10, 8),
	})

	for _, collector := range []prometheus.Collector{
		m.draws,
		m.sequences,
		m.sequenceDuration,
	} {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stats provides the summary statistics used to characterize sample
// sequences: marginal means, cross correlation, and serial correlation.
package stats

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of [values].
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Correlation returns the Pearson correlation between [xs] and [ys], which
// must have equal length.
func Correlation(xs, ys []float64) float64 {
	return stat.Correlation(xs, ys, nil)
}

// Lag1Autocorrelation returns the correlation between [values] and itself
// shifted by one position. Sequences shorter than two elements have no serial
// structure to measure and report 0.
func Lag1Autocorrelation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.Correlation(values[:len(values)-1], values[1:], nil)
}

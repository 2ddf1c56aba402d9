// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

var globalGaussian = newGaussian()

func newGaussian() *gaussian {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(uint64(time.Now().UnixNano()))
	return &gaussian{
		source: source,
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   source,
		},
	}
}

// Gaussian produces standard-normal variates. It is the only randomness
// capability the samplers consume, which allows deterministic substitution
// in tests.
type Gaussian interface {
	// NormFloat64 returns a variate drawn from Normal(0, 1) and advances the
	// generator's state.
	NormFloat64() float64
}

// Source is a raw word generator that can back a Gaussian.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

type gaussian struct {
	lock   sync.Mutex
	source *prng.MT19937
	dist   distuv.Normal
}

func (g *gaussian) NormFloat64() float64 {
	// Note: We must grab a write lock here because dist.Rand internally
	// modifies source state.
	g.lock.Lock()
	v := g.dist.Rand()
	g.lock.Unlock()
	return v
}

func (g *gaussian) seed(seed uint64) {
	g.lock.Lock()
	g.source.Seed(seed)
	g.lock.Unlock()
}

// NewGaussian returns a Gaussian backed by [source]. The ziggurat conversion
// performed by the returned Gaussian consumes a variable number of words per
// variate, so two Gaussians produce equal sequences iff their sources do.
func NewGaussian(source Source) Gaussian {
	return &gaussian{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   seedlessSource{source},
		},
	}
}

// seedlessSource adapts a Source into the seedable source type the
// distribution requires. Reseeding is the owner's responsibility.
type seedlessSource struct {
	Source
}

func (seedlessSource) Seed(uint64) {}

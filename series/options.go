// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// options.go — functional options shared by all generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • WithRand panics on nil; everything else is validated by the generator,
//     which returns nil on invalid parameters.
//   • Determinism: WithRand shares one stream across calls, otherwise each
//     call seeds its own source.

package series

import (
	"math/rand"
)

const (
	defAmp        = 1.0   // amplitude A (> 0)
	defSigma      = 0.0   // Gaussian noise sigma (>= 0); 0 disables noise
	defTrendSlope = 0.0   // linear trend increment per sample
	defOffset     = 0.0   // constant added to every sample
	defBaseFreq   = 0.125 // pulse frequency (cycles/sample), period 8
	defDuty       = 0.5   // rectangular duty cycle in [0,1]
	defChirpF0    = 0.02  // chirp start frequency (cycles/sample)
	defChirpF1    = 0.25  // chirp end frequency (cycles/sample)
)

// config holds the resolved generator knobs.
type config struct {
	amp        float64
	sigma      float64
	trend      float64
	offset     float64
	freq       float64
	duty       float64
	triangular bool
	f0, f1     float64
	rng        *rand.Rand
}

// Option customizes a generator call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		amp:    defAmp,
		sigma:  defSigma,
		trend:  defTrendSlope,
		offset: defOffset,
		freq:   defBaseFreq,
		duty:   defDuty,
		f0:     defChirpF0,
		f1:     defChirpF1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// valid reports whether the shared knobs are usable.
func (c config) valid() bool {
	return c.amp > 0 && c.sigma >= 0
}

// rngFor returns the shared stream if configured, else a source seeded by seed.
func (c config) rngFor(seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

// finish adds offset, trend and noise to base sample i.
func (c config) finish(i int, base float64, rng *rand.Rand) float64 {
	v := base + c.offset + c.trend*float64(i)
	if c.sigma > 0 {
		v += c.sigma * rng.NormFloat64()
	}

	return v
}

// WithAmplitude sets the waveform amplitude (must be > 0).
func WithAmplitude(a float64) Option { return func(c *config) { c.amp = a } }

// WithNoise adds Gaussian noise with standard deviation sigma (>= 0).
func WithNoise(sigma float64) Option { return func(c *config) { c.sigma = sigma } }

// WithTrend adds trend·i to sample i.
func WithTrend(slope float64) Option { return func(c *config) { c.trend = slope } }

// WithOffset adds a constant to every sample.
func WithOffset(v float64) Option { return func(c *config) { c.offset = v } }

// WithFrequency sets the pulse frequency in cycles/sample (> 0).
func WithFrequency(f float64) Option { return func(c *config) { c.freq = f } }

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(d float64) Option { return func(c *config) { c.duty = d } }

// WithTriangular switches the pulse shape to a triangle.
func WithTriangular() Option { return func(c *config) { c.triangular = true } }

// WithChirpRange sets the chirp start and end frequencies (both > 0).
func WithChirpRange(f0, f1 float64) Option {
	return func(c *config) {
		c.f0 = f0
		c.f1 = f1
	}
}

// WithRand shares an explicit RNG across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// generators.go — deterministic waveform and stochastic generators.

package series

import (
	"math"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// Pulse returns a length-n pulse train.
// Shape:
//   - Rectangular: A while the phase fraction is below duty, 0 otherwise.
//   - Triangular:  A·(1 − |2·frac − 1|).
//
// Complexity: O(n).
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() || cfg.freq <= 0 || cfg.duty < 0 || cfg.duty > 1 {
		return nil
	}
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*cfg.freq, 1)
		var base float64
		if cfg.triangular {
			base = cfg.amp * (1 - math.Abs(2*frac-1))
		} else if frac < cfg.duty {
			base = cfg.amp
		}
		out[i] = cfg.finish(i, base, rng)
	}

	return out
}

// Chirp returns a length-n linear chirp sweeping f0 -> f1.
// Model:
//   - fi    = f0 + (f1 − f0)·i/(n−1)
//   - θᵢ₊₁  = θᵢ + τ·fi
//   - yᵢ    = A·sin(θᵢ) + offset + trend·i + noise
//
// Complexity: O(n).
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() || cfg.f0 <= 0 || cfg.f1 <= 0 {
		return nil
	}
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	denom := float64(n - 1)
	if denom == 0 {
		denom = 1
	}
	theta := 0.0
	for i := range out {
		fi := cfg.f0 + (cfg.f1-cfg.f0)*float64(i)/denom
		out[i] = cfg.finish(i, cfg.amp*math.Sin(theta), rng)
		theta += tau * fi
	}

	return out
}

// WhiteNoise returns n i.i.d. samples A·N(0,1) (plus offset/trend/noise).
// Complexity: O(n).
func WhiteNoise(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() {
		return nil
	}
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.finish(i, cfg.amp*rng.NormFloat64(), rng)
	}

	return out
}

// BrownianMotion returns a random walk starting at 0 with A·N(0,1) steps.
// Complexity: O(n).
func BrownianMotion(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() {
		return nil
	}
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	walk := 0.0
	for i := range out {
		if i > 0 {
			walk += cfg.amp * rng.NormFloat64()
		}
		out[i] = cfg.finish(i, walk, rng)
	}

	return out
}

// Linear returns offset + trend·i; with the default trend of 0 it uses a
// unit slope so the result is strictly increasing.
// Complexity: O(n).
func Linear(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	if !cfg.valid() {
		return nil
	}
	if cfg.trend == 0 {
		cfg.trend = 1
	}
	rng := cfg.rngFor(seed)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.finish(i, 0, rng)
	}

	return out
}

// Package series provides deterministic synthetic time series for tests,
// benchmarks, demos and the visgraph CLI.
//
// Every generator takes (n, seed, opts...) and returns a slice of length n,
// or nil when n < 1 or the resolved parameters are invalid. Output depends
// only on (n, seed, options); no global state is touched.
//
// Generators:
//
//   - Pulse:          rectangular or triangular pulse train.
//   - Chirp:          linear frequency sweep from f0 to f1.
//   - WhiteNoise:     i.i.d. Gaussian samples.
//   - BrownianMotion: cumulative sum of Gaussian steps.
//   - Linear:         offset + trend·i (strictly monotone for trend != 0).
//
// Shared options add a linear trend, an offset and Gaussian noise on top of
// the base waveform.
package series

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// dual.go — dual-perspective combinator: union of the graph of the series
// and the graph of its vertical reflection y -> -y.
//
// The reflected pass skips contiguous pairs (already present in the first
// pass). For Natural/Horizontal with m = 0 the two passes are disjoint and
// are concatenated as is. With m > 0, or for Circular arcs, a pair may be
// visible from both sides; the reflected duplicate is dropped and the first
// pass keeps its weight.

package visibility

import (
	"golang.org/x/sync/errgroup"
)

// buildDual runs both passes, concurrently when cfg.concurrent is set, and
// merges them.
func buildDual(s Series, cfg Config) (*accumulator, error) {
	var primary, mirror *accumulator
	passes := []func() error{
		func() error {
			primary = runPass(s, cfg, false, false)
			return nil
		},
		func() error {
			mirror = runPass(s.reflected(), cfg, false, true)
			return nil
		},
	}

	if cfg.concurrent {
		var g errgroup.Group
		for _, pass := range passes {
			g.Go(pass)
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, pass := range passes {
			if err := pass(); err != nil {
				return nil, err
			}
		}
	}

	dedup := cfg.penetrableLimit > 0 || cfg.family.kind == FamilyCircular
	primary.absorb(mirror, dedup)

	return primary, nil
}

// runPass builds one perspective of s. The reflected pass skips contiguous
// pairs and flips sign-sensitive weights back.
func runPass(s Series, cfg Config, onlyDegrees, reflected bool) *accumulator {
	acc := newAccumulator(s, cfg, onlyDegrees, reflected)
	newEngine(s, cfg, reflected, acc.add).run()

	return acc
}

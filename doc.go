// Package visgraph turns time series into visibility graphs: every sample
// becomes a node, and two samples are linked when they can "see" each other
// over the samples in between.
//
// 🚀 What is visgraph?
//
//	A fast, dependency-light toolkit that brings together:
//		• Natural, horizontal and circular (arc) visibility
//		• Penetrable visibility (tolerate up to m obstructions)
//		• Directed (left-to-right, top-to-bottom) and weighted edges
//		• Weight filtering, degree-only builds, dual-perspective graphs
//		• Degree sequence, counts, distribution and adjacency matrix views
//
// ✨ Why choose visgraph?
//
//   - Divide and conquer around the range maximum: O(n log n) on typical input
//   - Deterministic output: edges sorted by endpoint, no map iteration
//   - Clear errors: sentinel values with context and hints
//   - Safe to share: built graphs are read-only and lock-protected
//
// Under the hood, everything is organized under these subpackages:
//
//	visibility/ — predicates, construction engine, accumulator, dual perspective
//	vg/         — Graph facade: build, edges, degrees, matrices, summary
//	matrix/     — dense row-major matrix used for adjacency views
//	series/     — deterministic synthetic series (pulse, chirp, noise, walks)
//	cmd/visgraph — command line front end
//
// Quick ASCII example:
//
//	    ▌         series  3 1 2
//	    ▌   ▌
//	    ▌ ▌ ▌     edges   0-1 1-2 0-2
//	    0 1 2
//
// sample 1 sits below the line from 0 to 2, so 0 and 2 see each other.
//
//	go get github.com/katalvlaran/visgraph/vg
package visgraph

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// rangemax.go — sparse table answering "leftmost index of the maximum value
// in [lo, hi)" in O(1) after O(n log n) preprocessing.

package visibility

import (
	"math/bits"
)

// sparseTable stores, for every level j and start i, the leftmost argmax of
// ys[i : i+2^j].
type sparseTable struct {
	ys     []float64
	levels [][]int32
}

// newSparseTable preprocesses ys.
// Complexity: O(n log n) time and memory.
func newSparseTable(ys []float64) *sparseTable {
	n := len(ys)
	st := &sparseTable{ys: ys}
	if n == 0 {
		return st
	}

	base := make([]int32, n)
	for i := range base {
		base[i] = int32(i)
	}
	st.levels = append(st.levels, base)

	for span := 2; span <= n; span <<= 1 {
		prev := st.levels[len(st.levels)-1]
		half := span >> 1
		cur := make([]int32, n-span+1)
		for i := range cur {
			cur[i] = st.better(prev[i], prev[i+half])
		}
		st.levels = append(st.levels, cur)
	}

	return st
}

// better returns the index with the larger value; ties keep the leftmost.
func (st *sparseTable) better(a, b int32) int32 {
	if st.ys[b] > st.ys[a] || (st.ys[b] == st.ys[a] && b < a) {
		return b
	}

	return a
}

// argmax returns the leftmost index of the maximum in [lo, hi); hi > lo.
// Complexity: O(1).
func (st *sparseTable) argmax(lo, hi int) int {
	j := bits.Len(uint(hi-lo)) - 1
	left := st.levels[j][lo]
	right := st.levels[j][hi-(1<<j)]

	return int(st.better(left, right))
}

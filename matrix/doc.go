// Package matrix provides a row-major Dense float64 matrix used to
// materialize visibility graphs as adjacency matrices.
//
// Dense stores its cells in one flat slice (offset = i*cols + j). Public
// accessors are bounds-checked and return sentinel errors instead of
// panicking. By default Set rejects NaN/±Inf; matrices that use a
// non-finite marker for "no edge" are created with WithNonFinite.
//
// Matrices are best for small or dense graphs where O(V²) memory is
// acceptable; large series should stay on the edge list.
package matrix

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// tracker.go — bounded "strongest obstructors so far" set used by the sweeps.
//
// A sweep from an origin sample ranks every sample it passes; the obstruction
// set of any later candidate is an upper set of that ranking, so the m+1
// highest-ranked samples are enough to decide "more than m obstructions".

package visibility

// tracked is one ranked sample.
type tracked struct {
	idx  int
	rank float64
}

// tracker keeps the top cap samples by rank, highest first.
type tracker struct {
	cap   int
	items []tracked
}

// newTracker allocates a tracker holding at most capacity samples.
func newTracker(capacity int) *tracker {
	return &tracker{cap: capacity, items: make([]tracked, 0, capacity)}
}

// reset empties the tracker, keeping its storage.
func (t *tracker) reset() { t.items = t.items[:0] }

// full reports whether cap samples are held.
func (t *tracker) full() bool { return len(t.items) == t.cap }

// weakest returns the lowest rank held; valid only when non-empty.
func (t *tracker) weakest() float64 { return t.items[len(t.items)-1].rank }

// push offers a sample; it is kept when it ranks among the top cap.
// Equal ranks keep the earlier sample first.
// Complexity: O(cap).
func (t *tracker) push(idx int, rank float64) {
	if t.full() {
		if rank <= t.weakest() {
			return
		}
		t.items = t.items[:len(t.items)-1]
	}
	pos := len(t.items)
	for pos > 0 && t.items[pos-1].rank < rank {
		pos--
	}
	t.items = append(t.items, tracked{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = tracked{idx: idx, rank: rank}
}

// count returns how many held samples obstruct the pair (a, b).
func (t *tracker) count(a, b int, obstructs func(a, b, c int) bool) int {
	n := 0
	for _, it := range t.items {
		if obstructs(a, b, it.idx) {
			n++
		}
	}

	return n
}

package provedge

import "fmt"

// EdgeSet is the ordered collection of maximally-joined border polylines
// traced from one grid. It is frozen after construction.
type EdgeSet struct {
	edges []*Edge
	stats Stats
}

// Trace extracts the full edge set of g: one streaming scan emits maximal
// axis-aligned boundary segments, then joining welds them into maximal
// polylines. A grid with no unlike-neighbor pairs yields an empty set.
//
// The result depends only on the grid: edges appear in first-emission
// order and every knot sequence is reproducible run to run.
//
// Complexity: O(W·H) time.
func Trace(g Grid) (*EdgeSet, error) {
	w, h := g.Width(), g.Height()
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: %d×%d, need at least 3×3", ErrGridTooSmall, w, h)
	}
	if w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d", ErrGridTooLarge, w, h, maxDimension)
	}

	t := &tracer{
		g:       g,
		w:       w,
		h:       h,
		byPoint: make(map[Point][]int32),
		vert:    make([]segment, w),
	}
	t.scan()
	t.join()

	return &EdgeSet{edges: t.compact(), stats: t.stats}, nil
}

// Len reports the number of edges.
func (s *EdgeSet) Len() int { return len(s.edges) }

// At returns the i-th edge in first-emission order.
func (s *EdgeSet) At(i int) *Edge { return s.edges[i] }

// Edges returns the edge sequence. The slice aliases the set's storage;
// callers must not mutate it.
func (s *EdgeSet) Edges() []*Edge { return s.edges }

// Stats returns the scan counters.
func (s *EdgeSet) Stats() Stats { return s.stats }

package provedge

// edgeEnd selects which endpoint of an edge a trace works from.
type edgeEnd uint8

const (
	frontEnd edgeEnd = iota
	backEnd
)

// join welds the two-knot edges of the scan into maximal polylines. Edges
// are visited in insertion order; each surviving edge is traced from both
// endpoints, consuming partners until none remains.
func (t *tracer) join() {
	for idx := range t.edges {
		if t.edges[idx] == nil {
			continue
		}
		t.traceEnd(int32(idx), frontEnd)
		t.traceEnd(int32(idx), backEnd)
	}
}

// traceEnd extends edge idx from the chosen endpoint for as long as a
// joinable partner exists there.
//
// Among the ≤4 edges ending at a lattice point, at most one other can
// share this edge's relation: a colinear same-relation neighbor would
// already have been merged by the scan, and the two perpendicular
// candidates, being colinear with each other, cannot both match. The
// partner is therefore unique and joining is deterministic. Termination:
// every iteration destroys one edge.
func (t *tracer) traceEnd(idx int32, end edgeEnd) {
	e := t.edges[idx]
	for {
		p := e.Front()
		if end == backEnd {
			p = e.Back()
		}

		other := int32(-1)
		for _, oi := range t.byPoint[p] {
			// A closed loop lists idx twice at its seam; both entries are
			// this edge, leaving nothing to join.
			if oi != idx && t.edges[oi].rel == e.rel {
				other = oi

				break
			}
		}
		if other < 0 {
			return
		}
		o := t.edges[other]

		// Both entries at the weld point are obsolete.
		t.unregister(p, idx)
		t.unregister(p, other)

		if end == frontEnd {
			e.appendFront(o)
		} else {
			e.appendBack(o)
		}

		// The new endpoint on this side is o's far endpoint; its entry
		// still names o, so redirect it to the surviving edge.
		np := e.Front()
		if end == backEnd {
			np = e.Back()
		}
		t.redirect(np, other, idx)

		t.edges[other] = nil
	}
}

// unregister removes one entry naming edge idx from the bucket at p.
func (t *tracer) unregister(p Point, idx int32) {
	bucket := t.byPoint[p]
	for i, oi := range bucket {
		if oi == idx {
			bucket = append(bucket[:i], bucket[i+1:]...)

			break
		}
	}
	if len(bucket) == 0 {
		delete(t.byPoint, p)
	} else {
		t.byPoint[p] = bucket
	}
}

// redirect rewrites the entry at p naming edge from so it names edge to.
func (t *tracer) redirect(p Point, from, to int32) {
	bucket := t.byPoint[p]
	for i, oi := range bucket {
		if oi == from {
			bucket[i] = to

			return
		}
	}
}

// compact removes tombstones, preserving the relative order of surviving
// edges, and shrinks the backing array to fit.
func (t *tracer) compact() []*Edge {
	n := 0
	for _, e := range t.edges {
		if e != nil {
			t.edges[n] = e
			n++
		}
	}
	out := make([]*Edge, n)
	copy(out, t.edges[:n])

	return out
}

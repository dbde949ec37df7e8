package provedge

import "github.com/zijistark/libck2/core"

// direction labels a segment's orientation. A vertical segment has a
// fixed x-coordinate and varies y; a horizontal segment is the opposite.
type direction uint8

const (
	vertical direction = iota
	horizontal
)

// segment is a maximal colinear boundary run, open while the scan can
// still extend it. It lives only during the scan; finishing promotes it
// to a two-knot edge.
type segment struct {
	rel    Relation
	fixed  uint16
	start  uint16
	end    uint16
	active bool
}

// tracer holds the engine's working state: the edges emitted so far, the
// endpoint multi-map used for joining, and the O(W) open-segment state of
// the scan.
type tracer struct {
	g    Grid
	w, h int

	// edges is dense and index-stable; joining tombstones consumed
	// entries with nil and compaction removes them at the end.
	edges []*Edge

	// byPoint maps a lattice point to the indices of edges that currently
	// end there. At most four unit boundaries meet at one point, so each
	// bucket holds at most four entries.
	byPoint map[Point][]int32

	// horiz is the single open horizontal segment; its fixed coordinate
	// belongs to the current row, so one suffices. vert holds one open
	// vertical segment per column.
	horiz segment
	vert  []segment

	stats Stats
}

// scan performs the single row-major pass, emitting every maximal
// axis-aligned boundary segment of the grid as a two-knot edge.
// Complexity: O(W·H) time, O(W) auxiliary state.
func (t *tracer) scan() {
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			id := t.g.At(x, y)
			if x+1 < t.w {
				// Boundary with the right neighbor: fixed x+1, varying y.
				t.step(&t.vert[x], vertical, x+1, y, id, t.g.At(x+1, y))
			}
			if y+1 < t.h {
				// Boundary with the bottom neighbor: fixed y+1, varying x.
				t.step(&t.horiz, horizontal, y+1, x, id, t.g.At(x, y+1))
			}
		}
		// The next row has a different fixed coordinate.
		if t.horiz.active {
			t.finish(horizontal, &t.horiz)
		}
	}
	for x := range t.vert {
		if t.vert[x].active {
			t.finish(vertical, &t.vert[x])
		}
	}
}

// step advances one open segment past the unit boundary between cells
// carrying a and b at varying coordinate c: extend on a matching
// relation, finish-and-reopen on a clash, finish on no boundary at all.
func (t *tracer) step(seg *segment, dir direction, fixed, c int, a, b core.ProvID) {
	if a == b {
		if seg.active {
			t.finish(dir, seg)
		}

		return
	}

	rel := NewRelation(a, b)
	if seg.active {
		if seg.rel == rel {
			seg.end = uint16(c + 1)

			return
		}
		t.finish(dir, seg)
	}
	*seg = segment{
		rel:    rel,
		fixed:  uint16(fixed),
		start:  uint16(c),
		end:    uint16(c + 1),
		active: true,
	}
}

// finish promotes seg to a fresh two-knot edge, registers both endpoints
// in the multi-map, and deactivates the segment.
func (t *tracer) finish(dir direction, seg *segment) {
	var p1, p2 Point
	if dir == vertical {
		p1 = Point{X: seg.fixed, Y: seg.start}
		p2 = Point{X: seg.fixed, Y: seg.end}
	} else {
		p1 = Point{X: seg.start, Y: seg.fixed}
		p2 = Point{X: seg.end, Y: seg.fixed}
	}
	t.addEdge(seg.rel, p1, p2)
	seg.active = false

	length := int(seg.end - seg.start)
	t.stats.Segments++
	t.stats.UnitLength += length
	t.stats.SavedUnits += length - 1
}

// addEdge appends a two-knot edge and indexes both endpoints.
func (t *tracer) addEdge(rel Relation, p1, p2 Point) {
	idx := int32(len(t.edges))
	t.edges = append(t.edges, newEdge(rel, p1, p2))
	t.byPoint[p1] = append(t.byPoint[p1], idx)
	t.byPoint[p2] = append(t.byPoint[p2], idx)
}

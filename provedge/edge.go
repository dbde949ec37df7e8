package provedge

// Edge is a maximal paraxial polyline along a single relation. Knots are
// lattice points; consecutive knots differ in exactly one axis, and every
// interior knot is a corner. Edges are built by the tracer and read-only
// to consumers.
type Edge struct {
	rel   Relation
	knots knotDeque
}

// newEdge builds the two-knot edge a finished segment promotes to.
func newEdge(rel Relation, p1, p2 Point) *Edge {
	e := &Edge{rel: rel}
	e.knots.init(p1, p2)

	return e
}

// Relation returns the unordered id pair this edge separates.
func (e *Edge) Relation() Relation { return e.rel }

// Len reports the number of knots; always ≥ 2.
func (e *Edge) Len() int { return e.knots.len() }

// Knot returns the i-th knot. Complexity: O(1).
func (e *Edge) Knot(i int) Point { return e.knots.at(i) }

// Knots returns a copy of the knot sequence, front to back.
func (e *Edge) Knots() []Point {
	out := make([]Point, e.Len())
	for i := range out {
		out[i] = e.knots.at(i)
	}

	return out
}

// Front returns the first knot.
func (e *Edge) Front() Point { return e.knots.at(0) }

// Back returns the last knot.
func (e *Edge) Back() Point { return e.knots.at(e.Len() - 1) }

// Closed reports whether the edge is a loop (front equals back).
func (e *Edge) Closed() bool { return e.Front() == e.Back() }

// appendBack splices o's knots past this edge's back. The shared endpoint
// is kept once; o's knots are walked away from it, reversing when o's
// back is the shared point.
func (e *Edge) appendBack(o *Edge) {
	if e.Back() == o.Front() {
		for i := 1; i < o.Len(); i++ {
			e.knots.pushBack(o.knots.at(i))
		}
	} else {
		// o joins back-to-back; copy it in reverse.
		for i := o.Len() - 2; i >= 0; i-- {
			e.knots.pushBack(o.knots.at(i))
		}
	}
}

// appendFront is the mirror of appendBack at the front endpoint.
func (e *Edge) appendFront(o *Edge) {
	if e.Front() == o.Front() {
		for i := 1; i < o.Len(); i++ {
			e.knots.pushFront(o.knots.at(i))
		}
	} else {
		for i := o.Len() - 2; i >= 0; i-- {
			e.knots.pushFront(o.knots.at(i))
		}
	}
}

// knotDeque is a ring buffer with O(1) push at both ends. Joining
// prepends as often as it appends, and most edges stay tiny, so the
// buffer starts small: four slots, a fresh segment's two knots plus room
// for two more before the first growth.
type knotDeque struct {
	buf  []Point
	head int
	n    int
}

// init seeds the deque with the two endpoints of a fresh segment.
func (d *knotDeque) init(p1, p2 Point) {
	d.buf = make([]Point, 4)
	d.buf[0], d.buf[1] = p1, p2
	d.head = 0
	d.n = 2
}

// len reports the number of stored points.
func (d *knotDeque) len() int { return d.n }

// at returns the i-th point from the front.
func (d *knotDeque) at(i int) Point {
	return d.buf[(d.head+i)&(len(d.buf)-1)]
}

// pushBack appends past the back.
func (d *knotDeque) pushBack(p Point) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)&(len(d.buf)-1)] = p
	d.n++
}

// pushFront prepends past the front.
func (d *knotDeque) pushFront(p Point) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1) & (len(d.buf) - 1)
	d.buf[d.head] = p
	d.n++
}

// grow doubles capacity, unrolling the ring to the front of the new
// buffer. Capacity stays a power of two so index masking works.
func (d *knotDeque) grow() {
	next := make([]Point, 2*len(d.buf))
	for i := 0; i < d.n; i++ {
		next[i] = d.at(i)
	}
	d.buf = next
	d.head = 0
}

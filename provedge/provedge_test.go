package provedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zijistark/libck2/core"
	"github.com/zijistark/libck2/provedge"
	"github.com/zijistark/libck2/provmap"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// grid builds a provmap.Grid from rows, top row first.
func grid(t *testing.T, rows [][]core.ProvID) *provmap.Grid {
	t.Helper()
	g, err := provmap.FromRows(rows)
	require.NoError(t, err)

	return g
}

// trace runs the engine and fails the test on error.
func trace(t *testing.T, rows [][]core.ProvID) *provedge.EdgeSet {
	t.Helper()
	set, err := provedge.Trace(grid(t, rows))
	require.NoError(t, err)

	return set
}

func pt(x, y int) provedge.Point {
	return provedge.Point{X: uint16(x), Y: uint16(y)}
}

// samePolyline reports whether got equals want forward or reversed; an
// edge is geometrically undirected.
func samePolyline(got, want []provedge.Point) bool {
	if len(got) != len(want) {
		return false
	}
	forward, backward := true, true
	for i := range got {
		if got[i] != want[i] {
			forward = false
		}
		if got[i] != want[len(want)-1-i] {
			backward = false
		}
	}

	return forward || backward
}

// byRelation indexes a set's edges by relation, failing on duplicates so
// scenario tests can address edges without pinning emission order.
func byRelation(t *testing.T, set *provedge.EdgeSet) map[provedge.Relation]*provedge.Edge {
	t.Helper()
	m := make(map[provedge.Relation]*provedge.Edge, set.Len())
	for _, e := range set.Edges() {
		require.NotContains(t, m, e.Relation(), "two edges with relation %v", e.Relation())
		m[e.Relation()] = e
	}

	return m
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestUniformGrid: a single province has no borders.
func TestUniformGrid(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{7, 7, 7},
		{7, 7, 7},
		{7, 7, 7},
	})
	require.Equal(t, 0, set.Len())
	require.Equal(t, provedge.Stats{}, set.Stats())
}

// TestVerticalSplit: one straight border spanning the full height.
func TestVerticalSplit(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{1, 2, 2},
		{1, 2, 2},
		{1, 2, 2},
	})
	require.Equal(t, 1, set.Len())

	e := set.At(0)
	require.Equal(t, provedge.NewRelation(1, 2), e.Relation())
	require.Equal(t, []provedge.Point{pt(1, 0), pt(1, 3)}, e.Knots())

	require.Equal(t, provedge.Stats{Segments: 1, UnitLength: 3, SavedUnits: 2}, set.Stats())
}

// TestSteppedSplit: a border with one corner welds into a single edge.
func TestSteppedSplit(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{1, 1, 2},
		{1, 2, 2},
		{1, 2, 2},
	})
	require.Equal(t, 1, set.Len())

	e := set.At(0)
	require.Equal(t, provedge.NewRelation(1, 2), e.Relation())
	want := []provedge.Point{pt(2, 0), pt(2, 1), pt(1, 1), pt(1, 3)}
	require.True(t, samePolyline(e.Knots(), want), "knots = %v; want %v (either direction)", e.Knots(), want)
}

// TestCoast: a straight ocean/land border along a full row.
func TestCoast(t *testing.T) {
	o := core.Ocean
	set := trace(t, [][]core.ProvID{
		{o, o, o, o},
		{5, 5, 5, 5},
		{5, 5, 5, 5},
	})
	require.Equal(t, 1, set.Len())

	e := set.At(0)
	require.Equal(t, provedge.NewRelation(5, core.Ocean), e.Relation())
	require.Equal(t, []provedge.Point{pt(0, 1), pt(4, 1)}, e.Knots())
}

// TestOnePixelIsland: the border closes on itself as a 5-knot loop
// covering all four unit boundaries.
func TestOnePixelIsland(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{3, 3, 3},
		{3, 9, 3},
		{3, 3, 3},
	})
	require.Equal(t, 1, set.Len())

	e := set.At(0)
	require.Equal(t, provedge.NewRelation(3, 9), e.Relation())
	require.Equal(t, 5, e.Len())
	require.True(t, e.Closed(), "island border must close: %v", e.Knots())

	want := []unitSeg{
		{pt(1, 1), dirH}, {pt(1, 2), dirH},
		{pt(1, 1), dirV}, {pt(2, 1), dirV},
	}
	require.ElementsMatch(t, want, edgeUnits(t, e))
}

// TestTJunction: three relations meet at one lattice point; the edges
// stay distinct and share the junction as an endpoint.
func TestTJunction(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{1, 1, 2},
		{1, 1, 2},
		{3, 3, 2},
	})
	require.Equal(t, 3, set.Len())

	edges := byRelation(t, set)
	cases := []struct {
		rel  provedge.Relation
		want []provedge.Point
	}{
		{provedge.NewRelation(1, 2), []provedge.Point{pt(2, 0), pt(2, 2)}},
		{provedge.NewRelation(1, 3), []provedge.Point{pt(0, 2), pt(2, 2)}},
		{provedge.NewRelation(2, 3), []provedge.Point{pt(2, 2), pt(2, 3)}},
	}
	junction := pt(2, 2)
	for _, tc := range cases {
		e, ok := edges[tc.rel]
		require.True(t, ok, "missing edge for relation %v", tc.rel)
		require.True(t, samePolyline(e.Knots(), tc.want),
			"%v knots = %v; want %v (either direction)", tc.rel, e.Knots(), tc.want)
		require.True(t, e.Front() == junction || e.Back() == junction,
			"%v must end at the junction %v", tc.rel, junction)
	}
}

// TestReservedOnlyGrids: reserved codes alone border nothing unless both
// kinds coexist.
func TestReservedOnlyGrids(t *testing.T) {
	o, imp := core.Ocean, core.Impassable

	set := trace(t, [][]core.ProvID{
		{o, o, o},
		{o, o, o},
		{o, o, o},
	})
	require.Equal(t, 0, set.Len())

	set = trace(t, [][]core.ProvID{
		{o, o, o},
		{imp, imp, imp},
		{imp, imp, imp},
	})
	require.Equal(t, 1, set.Len())
	require.Equal(t, provedge.NewRelation(core.Ocean, core.Impassable), set.At(0).Relation())
}

// TestInteriorCross: four provinces meeting at one point produce four
// edges of pairwise-different relations sharing that point.
func TestInteriorCross(t *testing.T) {
	set := trace(t, [][]core.ProvID{
		{1, 1, 2, 2},
		{1, 1, 2, 2},
		{3, 3, 4, 4},
		{3, 3, 4, 4},
	})
	require.Equal(t, 4, set.Len())

	cross := pt(2, 2)
	for _, e := range set.Edges() {
		require.True(t, e.Front() == cross || e.Back() == cross,
			"edge %v must end at the crossing %v", e.Relation(), cross)
	}
	edges := byRelation(t, set)
	for _, rel := range []provedge.Relation{
		provedge.NewRelation(1, 2), provedge.NewRelation(1, 3),
		provedge.NewRelation(2, 4), provedge.NewRelation(3, 4),
	} {
		require.Contains(t, edges, rel)
	}
}

//----------------------------------------------------------------------------//
// Size validation
//----------------------------------------------------------------------------//

// fakeGrid lets tests feed the tracer dimensions provmap would reject.
type fakeGrid struct {
	w, h int
}

func (f fakeGrid) Width() int              { return f.w }
func (f fakeGrid) Height() int             { return f.h }
func (f fakeGrid) At(_, _ int) core.ProvID { return 1 }

func TestTrace_SizeBounds(t *testing.T) {
	_, err := provedge.Trace(fakeGrid{w: 2, h: 3})
	require.ErrorIs(t, err, provedge.ErrGridTooSmall)

	_, err = provedge.Trace(fakeGrid{w: 3, h: 2})
	require.ErrorIs(t, err, provedge.ErrGridTooSmall)

	_, err = provedge.Trace(fakeGrid{w: 65536, h: 3})
	require.ErrorIs(t, err, provedge.ErrGridTooLarge)
}

//----------------------------------------------------------------------------//
// Relations
//----------------------------------------------------------------------------//

func TestRelation(t *testing.T) {
	r := provedge.NewRelation(9, 3)
	require.Equal(t, core.ProvID(3), r.Low)
	require.Equal(t, core.ProvID(9), r.High)
	require.Equal(t, r, provedge.NewRelation(3, 9))
	require.Equal(t, uint32(3)<<16|uint32(9), r.Fingerprint())
}

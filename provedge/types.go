package provedge

import (
	"errors"
	"fmt"

	"github.com/zijistark/libck2/core"
)

// Sentinel errors for edge tracing.
var (
	// ErrGridTooSmall indicates a grid below the 3×3 minimum.
	ErrGridTooSmall = errors.New("provedge: grid too small")

	// ErrGridTooLarge indicates a dimension whose lattice coordinates
	// would overflow uint16.
	ErrGridTooLarge = errors.New("provedge: grid too large")
)

// maxDimension keeps every lattice coordinate (0..W, 0..H) within uint16.
const maxDimension = 0xFFFF

// Grid is the read-only cell access the tracer needs. *provmap.Grid
// satisfies it.
type Grid interface {
	// Width reports the number of columns.
	Width() int
	// Height reports the number of rows.
	Height() int
	// At returns the province id of cell (x, y); row 0 is the top row.
	At(x, y int) core.ProvID
}

// Point is a lattice coordinate. Lattice points sit between pixels: the
// boundary separating cell (x, y) from its right neighbor runs from
// (x+1, y) to (x+1, y+1).
type Point struct {
	X, Y uint16
}

// String renders the point as (x, y).
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Relation is the canonical unordered pair of province ids on either side
// of a border: Low < High always.
type Relation struct {
	Low, High core.ProvID
}

// NewRelation canonicalizes the pair {a, b}.
func NewRelation(a, b core.ProvID) Relation {
	if a > b {
		a, b = b, a
	}

	return Relation{Low: a, High: b}
}

// Fingerprint packs the relation into 32 bits for hash keys.
func (r Relation) Fingerprint() uint32 {
	return uint32(r.Low)<<16 | uint32(r.High)
}

// String renders the relation as (low, high).
func (r Relation) String() string {
	return fmt.Sprintf("(%s, %s)", r.Low, r.High)
}

// Stats carries scan counters useful for tuning and testing. They are
// observational only; no behavior depends on them.
type Stats struct {
	// Segments is the number of maximal segments the scan emitted.
	Segments int

	// UnitLength is the summed unit length of those segments.
	UnitLength int

	// SavedUnits is the number of unit boundaries absorbed by colinear
	// extension rather than promoted to fresh edges.
	SavedUnits int
}

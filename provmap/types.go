package provmap

import (
	"errors"
	"fmt"

	"github.com/zijistark/libck2/core"
)

// Sentinel errors for bitmap loading and grid construction.
var (
	// ErrBadMagic indicates the file does not start with "BM".
	ErrBadMagic = errors.New("provmap: not a bitmap file")

	// ErrUnsupportedField indicates a DIB header field outside the
	// supported 24-bpp uncompressed form.
	ErrUnsupportedField = errors.New("provmap: unsupported bitmap format")

	// ErrSizeMismatch indicates a recorded bitmap size that disagrees with
	// the computed scanline layout.
	ErrSizeMismatch = errors.New("provmap: bitmap size mismatch")

	// ErrUnexpectedEOF indicates the stream ended mid-structure.
	ErrUnexpectedEOF = errors.New("provmap: unexpected end of bitmap data")

	// ErrUnknownColor indicates a pixel color absent from the color index.
	ErrUnknownColor = errors.New("provmap: unknown pixel color")

	// ErrMapTooSmall indicates a grid below the 3×3 minimum.
	ErrMapTooSmall = errors.New("provmap: map too small")

	// ErrMapTooLarge indicates a dimension above the 16-bit lattice range.
	ErrMapTooLarge = errors.New("provmap: map too large")

	// ErrInvariant indicates an internally inconsistent grid (shape
	// mismatch, null ids). It should not fire on well-formed input.
	ErrInvariant = errors.New("provmap: grid invariant violated")

	// ErrNoColor indicates Encode met a real id without a table color.
	ErrNoColor = errors.New("provmap: no color for province")
)

// maxDimension keeps every lattice coordinate (0..W, 0..H) within uint16.
const maxDimension = 0xFFFF

// Grid is a row-major H×W array of province ids. Row 0 is the top row and
// x grows to the right. A Grid is logically immutable after construction
// and safe for concurrent reads.
type Grid struct {
	width  int
	height int
	ids    []core.ProvID
}

// New constructs a grid over ids, which must hold width*height values in
// row-major order with no null ids.
func New(width, height int, ids []core.ProvID) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %d×%d, need at least 3×3", ErrMapTooSmall, width, height)
	}
	if width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d", ErrMapTooLarge, width, height, maxDimension)
	}
	if len(ids) != width*height {
		return nil, fmt.Errorf("%w: %d ids for a %d×%d grid", ErrInvariant, len(ids), width, height)
	}
	for i, id := range ids {
		if id == core.NullProvince {
			return nil, fmt.Errorf("%w: null id at (%d, %d)", ErrInvariant, i%width, i/width)
		}
	}

	return &Grid{width: width, height: height, ids: ids}, nil
}

// FromRows constructs a grid from row slices, top row first. All rows
// must share one length.
func FromRows(rows [][]core.ProvID) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMapTooSmall)
	}
	w := len(rows[0])
	ids := make([]core.ProvID, 0, len(rows)*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvariant, y, len(row), w)
		}
		ids = append(ids, row...)
	}

	return New(w, len(rows), ids)
}

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the province id of cell (x, y). Complexity: O(1).
func (g *Grid) At(x, y int) core.ProvID {
	return g.ids[y*g.width+x]
}

// IDs exposes the row-major backing array. Callers must not mutate it.
func (g *Grid) IDs() []core.ProvID { return g.ids }

package definitions

import (
	"errors"

	"github.com/zijistark/libck2/core"
)

// Sentinel errors for definitions-table operations.
var (
	// ErrBadRow indicates a malformed definition.csv row.
	ErrBadRow = errors.New("definitions: malformed row")

	// ErrDuplicateID indicates a row repeats an already-assigned id.
	ErrDuplicateID = errors.New("definitions: duplicate province id")

	// ErrNonContiguousID indicates a row skips ahead of the expected id.
	ErrNonContiguousID = errors.New("definitions: non-contiguous province id")

	// ErrIDRange indicates a row id above core.RealIDMax.
	ErrIDRange = errors.New("definitions: province id out of range")

	// ErrDuplicateColor indicates two rows share one color.
	ErrDuplicateColor = errors.New("definitions: duplicate province color")

	// ErrReservedColor indicates a row claims pure white or pure black,
	// which always resolve to the reserved Ocean/Impassable codes.
	ErrReservedColor = errors.New("definitions: reserved color in definitions row")
)

// Row is one definitions-table entry.
type Row struct {
	// ID is the province id; rows are stored at index ID.
	ID core.ProvID

	// Color is the province's unique display color.
	Color core.RGB

	// Name is the display name, decoded to UTF-8.
	Name string

	// Rest holds any trailing fields after the name, verbatim.
	Rest string
}

// Table is the dense, 1-based mapping of province id to definitions row.
// Index 0 holds a dummy row so that Row(id) is a direct slice access.
// A Table is cheap to query and safe for concurrent reads once built.
type Table struct {
	rows    []Row
	byColor map[core.RGB]core.ProvID
}

// NewTable returns an empty table containing only the dummy null row.
func NewTable() *Table {
	return &Table{
		rows:    []Row{{}},
		byColor: make(map[core.RGB]core.ProvID),
	}
}

// Len reports the number of real rows (the dummy null row is excluded).
func (t *Table) Len() int { return len(t.rows) - 1 }

// Row returns the row for id, or false when id is not in the table.
// Complexity: O(1).
func (t *Table) Row(id core.ProvID) (Row, bool) {
	if id == core.NullProvince || int(id) >= len(t.rows) {
		return Row{}, false
	}

	return t.rows[id], true
}

// Rows returns the real rows in ascending id order. The slice aliases the
// table's storage; callers must not mutate it.
func (t *Table) Rows() []Row { return t.rows[1:] }

// Color returns the display color for id, or false when id is unknown.
func (t *Table) Color(id core.ProvID) (core.RGB, bool) {
	r, ok := t.Row(id)

	return r.Color, ok
}

// Append adds the next row to the table. The row's id must be exactly
// Len()+1 and its color must be unused and non-reserved.
func (t *Table) Append(r Row) error {
	switch want := core.ProvID(len(t.rows)); {
	case r.ID > core.RealIDMax:
		return ErrIDRange
	case r.ID < want:
		return ErrDuplicateID
	case r.ID > want:
		return ErrNonContiguousID
	}
	if r.Color == core.White || r.Color == core.Black {
		return ErrReservedColor
	}
	if _, dup := t.byColor[r.Color]; dup {
		return ErrDuplicateColor
	}
	t.rows = append(t.rows, r)
	t.byColor[r.Color] = r.ID

	return nil
}

// ColorIndex returns the build-once color→id lookup over the table.
// The index shares the table's storage; build the table fully first.
func (t *Table) ColorIndex() *ColorIndex {
	return &ColorIndex{byColor: t.byColor}
}

// ColorIndex maps a 24-bit color to the province id it identifies.
// The two reserved colors (pure white, pure black) are never present;
// they resolve via dedicated fast paths in the bitmap loader.
type ColorIndex struct {
	byColor map[core.RGB]core.ProvID
}

// Lookup resolves a color to its province id. A miss is not an error at
// this level; the bitmap loader attaches pixel coordinates to misses.
// Complexity: O(1).
func (ci *ColorIndex) Lookup(c core.RGB) (core.ProvID, bool) {
	id, ok := ci.byColor[c]

	return id, ok
}

// Len reports the number of indexed colors.
func (ci *ColorIndex) Len() int { return len(ci.byColor) }

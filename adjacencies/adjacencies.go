// Package adjacencies models the adjacencies.csv table: the special
// connections (straits, rivers, portages) that make two provinces
// adjacent without sharing a border in the bitmap.
//
// File format:
//
//	Semicolon-separated lines "From;To;Type;Through;Comment" with one
//	header line. From/To/Through are province ids; Through names the
//	water province crossed (0 or -1 when none). A row whose From field
//	is -1 is a deleted placeholder retained so that row numbering is
//	stable across write-backs. Everything after the fourth separator is
//	the comment, verbatim.
//
// Errors:
//
//   - ErrBadRow: a row field failed to parse.
package adjacencies

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zijistark/libck2/core"
)

// ErrBadRow indicates a malformed adjacencies.csv row.
var ErrBadRow = errors.New("adjacencies: malformed row")

// header is the customary first line of adjacencies.csv.
const header = "From;To;Type;Through;Comment"

// Adjacency is one special connection between two provinces.
type Adjacency struct {
	// From and To are the connected provinces.
	From, To core.ProvID

	// Through is the water province the connection crosses, when any.
	Through core.ProvID

	// Type classifies the connection (conventionally "sea" or "major_river").
	Type string

	// Comment is preserved verbatim.
	Comment string

	// Deleted marks a placeholder row kept only for stable numbering.
	Deleted bool
}

// File is an ordered list of adjacency rows.
type File struct {
	rows []Adjacency
}

// Len reports the number of rows, deleted placeholders included.
func (f *File) Len() int { return len(f.rows) }

// Rows returns the rows in file order. The slice aliases the file's
// storage; callers must not mutate it.
func (f *File) Rows() []Adjacency { return f.rows }

// Append adds a row at the end of the file.
func (f *File) Append(a Adjacency) { f.rows = append(f.rows, a) }

// Parse reads an adjacencies table from r. The name parameter is used
// only for error messages.
func Parse(name string, r io.Reader) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if lineNo == 1 || line == "" || strings.HasPrefix(line, "#") {
			continue // header, blank, or comment line
		}

		parts := strings.SplitN(line, ";", 5)
		if len(parts) < 4 {
			return nil, fmt.Errorf("%s:%d: %w: need at least 4 fields, have %d",
				name, lineNo, ErrBadRow, len(parts))
		}

		var row Adjacency
		if strings.TrimSpace(parts[0]) == "-1" {
			row.Deleted = true
		} else {
			var err error
			if row.From, err = parseID(parts[0]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: From %q", name, lineNo, ErrBadRow, parts[0])
			}
			if row.To, err = parseID(parts[1]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: To %q", name, lineNo, ErrBadRow, parts[1])
			}
			if row.Through, err = parseID(parts[3]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: Through %q", name, lineNo, ErrBadRow, parts[3])
			}
			row.Type = strings.TrimSpace(parts[2])
		}
		if len(parts) == 5 {
			row.Comment = parts[4]
		}
		f.rows = append(f.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: reading adjacencies: %w", name, err)
	}

	return f, nil
}

// ParseFile opens and parses the adjacencies table at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adjacencies: %w", err)
	}
	defer fh.Close()

	return Parse(path, fh)
}

// Write regenerates the table: the header line, then one line per row in
// file order. Deleted placeholders render as "-1;-1;;-1".
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("adjacencies: writing header: %w", err)
	}
	for i, row := range f.rows {
		var line string
		if row.Deleted {
			line = "-1;-1;;-1"
		} else {
			line = fmt.Sprintf("%d;%d;%s;%s", row.From, row.To, row.Type, formatID(row.Through))
		}
		if row.Comment != "" {
			line += ";" + row.Comment
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("adjacencies: writing row %d: %w", i+1, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the table to path, truncating any existing file.
func (f *File) WriteFile(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("adjacencies: %w", err)
	}
	if err := f.Write(fh); err != nil {
		fh.Close()

		return err
	}

	return fh.Close()
}

// parseID reads a province id field; "-1" and empty both mean none.
func parseID(s string) (core.ProvID, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-1" {
		return core.NullProvince, nil
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}

	return core.ProvID(v), nil
}

// formatID renders a province id field; the null id renders as "-1".
func formatID(id core.ProvID) string {
	if id == core.NullProvince {
		return "-1"
	}

	return strconv.FormatUint(uint64(id), 10)
}

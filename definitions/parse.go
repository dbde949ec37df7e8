package definitions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/zijistark/libck2/core"
)

// fieldSep separates definition.csv columns.
const fieldSep = ";"

// Parse reads a definitions table from r. The name parameter is used only
// for error messages (conventionally the file path).
//
// Rows must carry contiguous ids ascending from 1 with pairwise-distinct,
// non-reserved colors. Lines whose first field is not a positive integer
// are skipped, which covers the customary header line, comments, and the
// null row some files carry.
//
// Complexity: O(rows).
func Parse(name string, r io.Reader) (*Table, error) {
	tbl := NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	dec := charmap.Windows1252.NewDecoder()

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, fieldSep, 6)
		id, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil || id == 0 {
			continue // header line or null row
		}
		if len(parts) < 5 {
			return nil, fmt.Errorf("%s:%d: %w: need at least 5 fields, have %d",
				name, lineNo, ErrBadRow, len(parts))
		}

		color, err := parseColor(parts[1], parts[2], parts[3])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}

		rowName, err := dec.String(parts[4])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: decoding name: %v", name, lineNo, ErrBadRow, err)
		}

		row := Row{ID: core.ProvID(id), Color: color, Name: rowName}
		if len(parts) == 6 {
			row.Rest = parts[5]
		}
		if err := tbl.Append(row); err != nil {
			return nil, fmt.Errorf("%s:%d: %w (id=%d, color=%v)", name, lineNo, err, id, color)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: reading definitions: %w", name, err)
	}

	return tbl, nil
}

// ParseFile opens and parses the definitions table at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// parseColor converts the three channel fields of a row.
func parseColor(r, g, b string) (core.RGB, error) {
	var c core.RGB
	for _, ch := range []struct {
		dst  *uint8
		text string
	}{{&c.R, r}, {&c.G, g}, {&c.B, b}} {
		v, err := strconv.ParseUint(strings.TrimSpace(ch.text), 10, 8)
		if err != nil {
			return core.RGB{}, fmt.Errorf("%w: color channel %q", ErrBadRow, ch.text)
		}
		*ch.dst = uint8(v)
	}

	return c, nil
}

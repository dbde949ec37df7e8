package definitions

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// header is the customary first line of definition.csv.
const header = "province;red;green;blue;name;x"

// Write regenerates the table in definition.csv form: the customary
// header line followed by one row per province in ascending id order.
// Names are re-encoded to Windows-1252; trailing suffixes are emitted
// verbatim.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := charmap.Windows1252.NewEncoder()

	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("definitions: writing header: %w", err)
	}
	for _, row := range t.Rows() {
		name, err := enc.String(row.Name)
		if err != nil {
			return fmt.Errorf("definitions: encoding name of province %d: %w", row.ID, err)
		}
		line := fmt.Sprintf("%d;%d;%d;%d;%s", row.ID, row.Color.R, row.Color.G, row.Color.B, name)
		if row.Rest != "" {
			line += fieldSep + row.Rest
		}
		if _, err = fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("definitions: writing row %d: %w", row.ID, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the table to path, truncating any existing file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("definitions: %w", err)
	}
	if err := t.Write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

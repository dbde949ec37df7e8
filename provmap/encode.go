package provmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/zijistark/libck2/core"
)

// ColorTable supplies the display color of a real province id. It is
// satisfied by *definitions.Table.
type ColorTable interface {
	Color(id core.ProvID) (core.RGB, bool)
}

// Encode writes the grid as a 24-bpp uncompressed BMP: 54-byte header,
// bottom-to-top scanlines padded to 4 bytes. Reserved ids render as pure
// white (Ocean) and pure black (Impassable); real ids resolve through
// colors. Loading the result with the matching color index reproduces the
// grid exactly.
func Encode(w io.Writer, g *Grid, colors ColorTable) error {
	stride := rowStride(g.width)
	bitmapSize := uint32(stride * g.height)

	bw := bufio.NewWriterSize(w, 64*1024)
	headers := []any{
		fileHeader{
			Magic:      bmpMagic,
			FileSize:   headerBytes + bitmapSize,
			DataOffset: headerBytes,
		},
		dibHeader{
			HeaderSize:   40,
			Width:        int32(g.width),
			Height:       int32(g.height),
			Planes:       1,
			BitsPerPixel: 24,
			BitmapSize:   bitmapSize,
		},
	}
	for _, h := range headers {
		if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
			return fmt.Errorf("provmap: writing bitmap header: %w", err)
		}
	}

	row := make([]byte, stride)
	for k := 0; k < g.height; k++ {
		y := g.height - 1 - k
		for x := 0; x < g.width; x++ {
			var c core.RGB
			switch id := g.At(x, y); id {
			case core.Ocean:
				c = core.White
			case core.Impassable:
				c = core.Black
			default:
				var ok bool
				if c, ok = colors.Color(id); !ok {
					return fmt.Errorf("%w %d at (%d, %d)", ErrNoColor, id, x, y)
				}
			}
			row[3*x], row[3*x+1], row[3*x+2] = c.B, c.G, c.R
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("provmap: writing scanline %d: %w", k, err)
		}
	}

	return bw.Flush()
}

// EncodeFile writes the grid as a BMP at path, truncating any existing
// file.
func EncodeFile(path string, g *Grid, colors ColorTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("provmap: %w", err)
	}
	if err := Encode(f, g, colors); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

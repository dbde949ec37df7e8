package provmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zijistark/libck2/core"
	"github.com/zijistark/libck2/definitions"
)

// bmpMagic is "BM" as a little-endian uint16.
const bmpMagic = 0x4D42

// headerBytes is the combined size of the file and 40-byte DIB headers.
const headerBytes = 14 + 40

// fileHeader is the BITMAPFILEHEADER layout.
type fileHeader struct {
	Magic      uint16
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// dibHeader is the BITMAPINFOHEADER layout. Larger DIB variants are
// accepted; their extra fields are skipped via the data offset.
type dibHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	BitmapSize      uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	Colors          uint32
	ImportantColors uint32
}

// rowStride returns the 4-byte-aligned byte length of one 24-bpp scanline.
func rowStride(width int) int {
	return 4 * ((3*width + 3) / 4)
}

// Load decodes a 24-bpp uncompressed BMP from r into a grid, resolving
// pixel colors through idx. The name parameter is used for error messages
// (conventionally the file path).
//
// Scanlines are stored bottom-to-top: file scanline k becomes grid row
// H-1-k. Within a scanline, pixel x occupies bytes [3x, 3x+3) as B, G, R.
// Per pixel, resolution order is: pure white → Ocean, pure black →
// Impassable, bytes equal to the previous pixel → previous id, otherwise
// the color index (a miss is fatal and carries the pixel position).
//
// Complexity: O(W·H) time, O(row stride) auxiliary memory.
func Load(name string, r io.Reader, idx *definitions.ColorIndex) (*Grid, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var fh fileHeader
	if err := binary.Read(br, binary.LittleEndian, &fh); err != nil {
		return nil, readErr(name, "file header", err)
	}
	if fh.Magic != bmpMagic {
		return nil, fmt.Errorf("%s: %w: magic %#04x, want %#04x", name, ErrBadMagic, fh.Magic, bmpMagic)
	}

	var dh dibHeader
	if err := binary.Read(br, binary.LittleEndian, &dh); err != nil {
		return nil, readErr(name, "DIB header", err)
	}
	if err := checkDIB(name, &dh); err != nil {
		return nil, err
	}

	width, height := int(dh.Width), int(dh.Height)
	switch {
	case width < 3 || height < 3:
		return nil, fmt.Errorf("%s: %w: %d×%d, need at least 3×3", name, ErrMapTooSmall, width, height)
	case width > maxDimension || height > maxDimension:
		return nil, fmt.Errorf("%s: %w: %d×%d exceeds %d", name, ErrMapTooLarge, width, height, maxDimension)
	}

	stride := rowStride(width)
	if dh.BitmapSize != 0 && dh.BitmapSize != uint32(stride*height) {
		return nil, fmt.Errorf("%s: %w: computed %d bytes, header records %d",
			name, ErrSizeMismatch, stride*height, dh.BitmapSize)
	}

	// Honor the recorded pixel-array offset; with offset 0, the array
	// follows the declared DIB header directly.
	skip := int64(dh.HeaderSize) - 40
	if fh.DataOffset != 0 {
		if fh.DataOffset < headerBytes {
			return nil, fmt.Errorf("%s: %w: data offset %d inside headers",
				name, ErrUnsupportedField, fh.DataOffset)
		}
		skip = int64(fh.DataOffset) - headerBytes
	}
	if skip > 0 {
		if _, err := io.CopyN(io.Discard, br, skip); err != nil {
			return nil, readErr(name, "pixel-array offset", err)
		}
	}

	ids := make([]core.ProvID, width*height)
	row := make([]byte, stride)

	for k := 0; k < height; k++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, readErr(name, fmt.Sprintf("scanline %d", k), err)
		}

		y := height - 1 - k
		out := ids[y*width : (y+1)*width]

		// Cache the previous pixel's bytes and id: province bitmaps are
		// dominated by long single-color runs, and the reuse skips the
		// hash lookup on every pixel of a run past its first.
		var prevB, prevG, prevR uint8
		var prevID core.ProvID

		for x := 0; x < width; x++ {
			b, g, r := row[3*x], row[3*x+1], row[3*x+2]

			var id core.ProvID
			switch {
			case b == 0xFF && g == 0xFF && r == 0xFF:
				id = core.Ocean
			case b == 0x00 && g == 0x00 && r == 0x00:
				id = core.Impassable
			case x > 0 && b == prevB && g == prevG && r == prevR:
				id = prevID
			default:
				var ok bool
				if id, ok = idx.Lookup(core.RGB{R: r, G: g, B: b}); !ok {
					return nil, fmt.Errorf("%s: %w: rgb(%d, %d, %d) at pixel (%d, %d)",
						name, ErrUnknownColor, r, g, b, x, y)
				}
			}

			prevB, prevG, prevR, prevID = b, g, r, id
			out[x] = id
		}
	}

	return &Grid{width: width, height: height, ids: ids}, nil
}

// LoadFile opens and decodes the bitmap at path.
func LoadFile(path string, idx *definitions.ColorIndex) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("provmap: %w", err)
	}
	defer f.Close()

	return Load(path, f, idx)
}

// checkDIB rejects every header form other than single-plane, 24-bpp,
// uncompressed, unpaletted.
func checkDIB(name string, dh *dibHeader) error {
	fail := func(field string, value any) error {
		return fmt.Errorf("%s: %w: %s = %v", name, ErrUnsupportedField, field, value)
	}
	switch {
	case dh.HeaderSize < 40:
		return fail("DIB header size", dh.HeaderSize)
	case dh.Width <= 0:
		return fail("width", dh.Width)
	case dh.Height <= 0:
		return fail("height", dh.Height)
	case dh.Planes != 1:
		return fail("planes", dh.Planes)
	case dh.BitsPerPixel != 24:
		return fail("bits per pixel", dh.BitsPerPixel)
	case dh.Compression != 0:
		return fail("compression", dh.Compression)
	case dh.Colors != 0:
		return fail("palette colors", dh.Colors)
	}

	return nil
}

// readErr classifies a short or failed read: stream truncation maps to
// ErrUnexpectedEOF with the stage that was being read, anything else is
// surfaced as the underlying I/O error.
func readErr(name, stage string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w: reading %s", name, ErrUnexpectedEOF, stage)
	}

	return fmt.Errorf("%s: reading %s: %w", name, stage, err)
}

package defaultmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/zijistark/libck2/core"
)

// Sentinel errors for default.map parsing.
var (
	// ErrBadAssignment indicates a line that is not "key = value".
	ErrBadAssignment = errors.New("defaultmap: malformed assignment")

	// ErrBadList indicates an unterminated or malformed brace list.
	ErrBadList = errors.New("defaultmap: malformed id list")

	// ErrMissingField indicates a required key was absent.
	ErrMissingField = errors.New("defaultmap: missing required field")
)

// IDRange is an inclusive run of province ids.
type IDRange struct {
	From, To core.ProvID
}

// Contains reports whether id lies within the range.
func (r IDRange) Contains(id core.ProvID) bool {
	return id >= r.From && id <= r.To
}

// DefaultMap is the parsed default.map manifest.
type DefaultMap struct {
	// MaxProvinces is one past the highest real province id in use.
	MaxProvinces int

	// Definitions, Provinces, and Adjacencies are file names relative to
	// the map directory.
	Definitions string
	Provinces   string
	Adjacencies string

	// SeaZones are the inclusive id ranges classified as open sea.
	SeaZones []IDRange

	// MajorRivers are the province ids classified as navigable rivers.
	MajorRivers []core.ProvID

	// Externals are off-map province ids (wasteland exclaves and the like).
	Externals []core.ProvID
}

// MapPath joins a manifest file name onto the virtual map directory for
// resolution through a vfs.VFS.
func (dm *DefaultMap) MapPath(file string) string {
	return path.Join("map", file)
}

// IsWaterProvince reports whether id belongs to a sea zone or is a major
// river. Complexity: O(len(SeaZones) + len(MajorRivers)); both are tiny.
func (dm *DefaultMap) IsWaterProvince(id core.ProvID) bool {
	for _, z := range dm.SeaZones {
		if z.Contains(id) {
			return true
		}
	}
	for _, r := range dm.MajorRivers {
		if r == id {
			return true
		}
	}

	return false
}

// Parse reads a default.map manifest from r. The name parameter is used
// only for error messages. Unknown keys are skipped.
func Parse(name string, r io.Reader) (*DefaultMap, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	dm := &DefaultMap{}
	for i := 0; i < len(toks); {
		key := toks[i]
		if i+1 >= len(toks) || toks[i+1] != "=" {
			return nil, fmt.Errorf("%s: %w: near %q", name, ErrBadAssignment, key)
		}
		i += 2
		if i >= len(toks) {
			return nil, fmt.Errorf("%s: %w: missing value for %q", name, ErrBadAssignment, key)
		}

		if toks[i] == "{" {
			list, next, err := parseList(toks, i)
			if err != nil {
				return nil, fmt.Errorf("%s: %w (key %q)", name, err, key)
			}
			i = next
			switch key {
			case "sea_zones":
				if len(list) != 2 {
					return nil, fmt.Errorf("%s: %w: sea_zones wants 2 ids, have %d",
						name, ErrBadList, len(list))
				}
				dm.SeaZones = append(dm.SeaZones, IDRange{From: list[0], To: list[1]})
			case "major_rivers":
				dm.MajorRivers = append(dm.MajorRivers, list...)
			case "externals":
				dm.Externals = append(dm.Externals, list...)
			}

			continue
		}

		val := strings.Trim(toks[i], `"`)
		i++
		switch key {
		case "max_provinces":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w: max_provinces %q", name, ErrBadAssignment, val)
			}
			dm.MaxProvinces = n
		case "definitions":
			dm.Definitions = val
		case "provinces":
			dm.Provinces = val
		case "adjacencies":
			dm.Adjacencies = val
		}
	}

	switch {
	case dm.Provinces == "":
		return nil, fmt.Errorf("%s: %w: provinces", name, ErrMissingField)
	case dm.Definitions == "":
		return nil, fmt.Errorf("%s: %w: definitions", name, ErrMissingField)
	case dm.MaxProvinces == 0:
		return nil, fmt.Errorf("%s: %w: max_provinces", name, ErrMissingField)
	}

	return dm, nil
}

// ParseFile opens and parses the manifest at path.
func ParseFile(p string) (*DefaultMap, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("defaultmap: %w", err)
	}
	defer f.Close()

	return Parse(p, f)
}

// tokenize splits the input into assignment tokens: keys, "=", "{", "}",
// quoted strings, and bare values. Comments run from '#' to end of line.
func tokenize(r io.Reader) ([]string, error) {
	var toks []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.ReplaceAll(line, "=", " = ")
		line = strings.ReplaceAll(line, "{", " { ")
		line = strings.ReplaceAll(line, "}", " } ")
		toks = append(toks, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("defaultmap: reading: %w", err)
	}

	return toks, nil
}

// parseList consumes a brace list of ids starting at toks[open] == "{",
// returning the ids and the index just past the closing brace.
func parseList(toks []string, open int) ([]core.ProvID, int, error) {
	var ids []core.ProvID
	for i := open + 1; i < len(toks); i++ {
		if toks[i] == "}" {
			return ids, i + 1, nil
		}
		v, err := strconv.ParseUint(toks[i], 10, 16)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: id %q", ErrBadList, toks[i])
		}
		ids = append(ids, core.ProvID(v))
	}

	return nil, 0, fmt.Errorf("%w: unterminated list", ErrBadList)
}

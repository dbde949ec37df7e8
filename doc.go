// Package libck2 processes the map data of Paradox grand-strategy titles:
// the 24-bit province bitmap, its definitions table, and the special
// adjacencies that connect provinces across straits and rivers.
//
// What you get:
//
//	core/        — province identifiers, reserved codes, RGB colors
//	definitions/ — definition.csv rows and the color→id index
//	defaultmap/  — the default.map contract (paths, sea zones, rivers)
//	vfs/         — layered mod-overlay path resolution
//	adjacencies/ — strait/river adjacency records
//	provmap/     — provinces.bmp → dense H×W grid of province ids
//	provedge/    — the province-edge engine: maximal paraxial border
//	               polylines between every pair of adjacent provinces
//
// The interesting part is provedge: a single streaming pass over the grid
// emits axis-aligned boundary segments, and an endpoint multi-map welds
// them into maximally-joined polylines, deterministically, in O(W·H).
//
// Typical flow:
//
//	fs, _ := vfs.New(gamePath)
//	p, _ := fs.Path("map/default.map")
//	dm, _ := defaultmap.ParseFile(p)
//	p, _ = fs.Path(dm.MapPath(dm.Definitions))
//	tbl, _ := definitions.ParseFile(p)
//	p, _ = fs.Path(dm.MapPath(dm.Provinces))
//	grid, _ := provmap.LoadFile(p, tbl.ColorIndex())
//	edges, _ := provedge.Trace(grid)
//
// Everything is synchronous and allocation-conscious; only the loaders
// touch the filesystem.
package libck2

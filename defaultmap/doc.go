// Package defaultmap models the default.map file: the manifest that names
// the map's data files and classifies the top of the province id space.
//
// What:
//
//   - DefaultMap: parsed manifest with typed accessors.
//   - MapPath: joins a manifest file name onto the virtual "map/" prefix
//     for resolution through a vfs.VFS.
//   - IsWaterProvince: sea-zone / major-river membership test.
//
// File format:
//
//	Line-oriented "key = value" assignments. Values are either a bare
//	token, a quoted string, or a brace list "{ a b ... }" that may span
//	lines. "#" starts a comment. Only the keys this package knows are
//	retained; unknown keys are skipped, as the game itself does.
//
// Errors:
//
//   - ErrBadAssignment: a line is not a recognizable assignment.
//   - ErrBadList: a brace list is unterminated or holds a malformed id.
//   - ErrMissingField: a required key (provinces, definitions,
//     max_provinces) is absent.
package defaultmap

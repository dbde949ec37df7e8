// Package definitions models the definition.csv table that assigns every
// real province its id, display color, and name.
//
// What:
//
//   - Row: one table entry (id, color, name, opaque trailing fields).
//   - Table: the dense 1-based id↔row mapping with read/write support.
//   - ColorIndex: the build-once color→id lookup consumed by the bitmap
//     loader.
//
// File format:
//
//	Semicolon-separated lines "id;red;green;blue;name;...". Province names
//	are Windows-1252 encoded on disk and exposed as UTF-8. Lines whose
//	first field is not a positive integer (the customary header line,
//	comments, blanks) are skipped. Everything after the name is preserved
//	verbatim as the row's trailing suffix.
//
// Invariants:
//
//   - Row ids are contiguous and ascending from 1.
//   - Each real id maps to exactly one color and vice versa.
//   - No row may claim pure white or pure black; those colors resolve to
//     the reserved Ocean/Impassable codes ahead of the table.
//
// Errors:
//
//   - ErrBadRow: a row field failed to parse.
//   - ErrDuplicateID: a row repeats an already-assigned id.
//   - ErrNonContiguousID: a row skips ahead of the expected id.
//   - ErrIDRange: a row id exceeds core.RealIDMax.
//   - ErrDuplicateColor: two rows share one color.
//   - ErrReservedColor: a row claims pure white or pure black.
package definitions

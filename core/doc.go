// Package core defines the primitive vocabulary shared by every map
// subsystem: the 16-bit province identifier with its reserved codes, and
// the 24-bit RGB color triple used by the definitions table and the
// province bitmap.
//
// What:
//
//   - ProvID: 16-bit province identifier; 0 is the null id.
//   - Reserved codes: Impassable (rendered pure black), Ocean (rendered
//     pure white), and RealIDMax, the largest id the definitions table
//     may assign.
//   - RGB: an 8-bit-per-channel color with packing helpers.
//
// Why:
//
//   - Keeping these types in a leaf package lets definitions, provmap and
//     provedge agree on identifiers without importing each other.
//
// core has no dependencies and performs no I/O.
package core

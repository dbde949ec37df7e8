// Package provedge extracts province borders from an id grid as maximal
// paraxial polylines: for every unordered pair of adjacent provinces, the
// set of edges tracing exactly the lattice lines that separate them.
//
// What:
//
//   - Point: a lattice coordinate; lattice points sit between pixels, so
//     a W×H grid spans (W+1)×(H+1) of them.
//   - Relation: the canonical unordered id pair an edge separates.
//   - Edge: an ordered knot sequence; consecutive knots differ in exactly
//     one axis, interior knots are corners.
//   - EdgeSet: the traced, maximally-joined, deterministic edge sequence.
//   - Trace: the engine; one streaming scan emits maximal axis-aligned
//     segments, then an endpoint multi-map welds them into polylines.
//
// How:
//
//	The scan visits cells in row-major order with one open horizontal
//	segment (per row) and one open vertical segment per column, extending
//	a segment while the relation holds and emitting it as a two-knot edge
//	when it breaks. Joining then traces every edge from both endpoints:
//	at a lattice point at most four unit boundaries meet, and at most one
//	other edge there can share a given edge's relation (colinear same-
//	relation runs were already merged by the scan, and the two remaining
//	perpendicular candidates cannot match each other), so the weld is
//	deterministic. Consumed edges leave tombstones that a final
//	order-preserving compaction removes.
//
// Guarantees:
//
//   - Every unit boundary between unlike cells lies on exactly one edge.
//   - An edge's relation holds along its entire length.
//   - No two edges share both an endpoint and a relation.
//   - A border closing on itself yields front == back (a loop).
//   - Output depends only on the grid: edge order is first-emission
//     order, knot sequences are reproducible run to run.
//
// Complexity: O(W·H) time; O(W) scan state beyond the output.
//
// Errors:
//
//   - ErrGridTooSmall: fewer than 3 columns or rows.
//   - ErrGridTooLarge: a dimension whose lattice exceeds uint16.
package provedge

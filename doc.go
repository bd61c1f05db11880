// Package draft provides the geometric core of a 2D CAD drafting
// document: the analytic geometry and cross-view bookkeeping that keep
// plan drawings and their derived section drawings consistent.
//
// # Overview
//
// A drafting project holds several plan drawings (typically one per
// building storey) and section drawings derived from cutting lines
// drawn in a plan. This module computes everything that crosses the
// boundary between those views:
//
//   - the root package holds 2D primitives: Point, segment/line
//     intersection, and color values
//   - package document models shapes, drawings, storeys and the
//     snapshot the engine reads
//   - package grid keeps structural gridlines identical across all
//     plan drawings
//   - package section derives gridlines, levels and slab cuts for a
//     section drawing from a cutting callout, and maps edits made in
//     the section view back to their plan sources
//
// The engine is a pure, synchronous computation: it reads a document
// snapshot and returns replacement shape sets. All mutation of the
// shared document is the host's responsibility and goes through the
// host's own transactional mechanism.
//
// # Coordinate System
//
// Drawings use canvas coordinates in document units (millimeters):
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Building elevations increase upward, so every conversion between a
// storey elevation and a section-view Y coordinate flips sign.
//
// # Numeric Policy
//
// Geometric comparisons use fixed absolute epsilons (see intersect.go),
// not relative tolerances. Document coordinates are millimeter-scale
// floats, where absolute epsilons are sufficient and predictable.
package draft

package section

import (
	"sort"

	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// minSlabSpan discards slab crossings narrower than one document unit
// (sub-millimeter), which are numerically meaningless grazes.
const minSlabSpan = 1.0

// GridHit is one gridline crossing the cutting line.
type GridHit struct {
	Source *document.Gridline
	T      float64     // callout parameter of the crossing
	Plan   draft.Point // crossing point in plan coordinates
	X      float64     // section-view X
}

// gridHits intersects the callout with every gridline of the plan
// drawing. Gridlines conceptually extend beyond their drawn endpoints,
// so each is treated as an infinite line while the callout stays
// finite. Hits are sorted ascending by t; the sort is stable, so ties
// keep document order. This left-to-right order is part of the output
// contract: insertion order and dimension chaining depend on it.
func gridHits(doc *document.Document, plan document.ID, c *document.SectionCallout, cs CoordSystem) []GridHit {
	var hits []GridHit
	for _, g := range doc.Gridlines(plan) {
		t, at, ok := draft.IntersectSegmentLine(c.Start, c.End, g.Start, g.End)
		if !ok {
			continue
		}
		hits = append(hits, GridHit{Source: g, T: t, Plan: at, X: cs.X(t)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

// SlabSpan is the section-axis interval a slab polygon covers where
// the cutting line passes through it.
type SlabSpan struct {
	Source *document.Slab
	T0, T1 float64 // entry and exit parameters, T0 <= T1
	X0, X1 float64 // section-view X range
}

// slabSpans intersects the callout segment against every slab polygon
// of the plan drawing, edge by edge (closing last to first). A slab
// needs at least two crossings (entry and exit); the span is the
// extreme [min t, max t] over all crossings. For concave or
// self-intersecting outlines this merges what are really multiple
// spans into one — a known limitation kept for compatibility with the
// established drawings this engine regenerates.
func slabSpans(doc *document.Document, plan document.ID, c *document.SectionCallout, cs CoordSystem) []SlabSpan {
	var spans []SlabSpan
	for _, sl := range doc.Slabs(plan) {
		n := len(sl.Outline)
		if n < 3 {
			continue
		}
		var ts []float64
		for i := 0; i < n; i++ {
			a := sl.Outline[i]
			b := sl.Outline[(i+1)%n]
			t, _, _, ok := draft.IntersectSegments(c.Start, c.End, a, b)
			if !ok {
				continue
			}
			ts = append(ts, t)
		}
		if len(ts) < 2 {
			continue
		}
		t0, t1 := ts[0], ts[0]
		for _, t := range ts[1:] {
			if t < t0 {
				t0 = t
			}
			if t > t1 {
				t1 = t
			}
		}
		if (t1-t0)*cs.Length < minSlabSpan {
			continue
		}
		spans = append(spans, SlabSpan{Source: sl, T0: t0, T1: t1, X0: cs.X(t0), X1: cs.X(t1)})
	}
	return spans
}

package section

import (
	"math"
	"testing"

	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

func extractDoc() (*document.Document, *document.SectionCallout) {
	doc := &document.Document{
		Drawings: []*document.Drawing{
			{ID: "plan", Name: "Ground Floor", Kind: document.Plan, DefaultLayer: "layer-p"},
			{ID: "sec", Name: "Section A-A", Kind: document.Section, DefaultLayer: "layer-s"},
		},
	}
	callout := &document.SectionCallout{
		Base:  document.Base{ID: "callout", Drawing: "plan"},
		Start: draft.Pt(-500, 500), End: draft.Pt(1500, 500),
		Section: "sec",
	}
	doc.AddShapes(callout)
	return doc, callout
}

func TestGridHits_SortedAndFiltered(t *testing.T) {
	doc, callout := extractDoc()
	cs := NewCoordSystem(callout)

	doc.AddShapes(
		// Inserted right-to-left to prove sorting by t.
		&document.Gridline{Base: document.Base{ID: "g-b", Drawing: "plan"}, Start: draft.Pt(1000, 0), End: draft.Pt(1000, 100), Label: "B"},
		&document.Gridline{Base: document.Base{ID: "g-a", Drawing: "plan"}, Start: draft.Pt(0, 0), End: draft.Pt(0, 100), Label: "A"},
		// Parallel to the callout: must not appear.
		&document.Gridline{Base: document.Base{ID: "g-par", Drawing: "plan"}, Start: draft.Pt(0, 900), End: draft.Pt(1000, 900), Label: "P"},
		// Different drawing: must not appear.
		&document.Gridline{Base: document.Base{ID: "g-other", Drawing: "elsewhere"}, Start: draft.Pt(500, 0), End: draft.Pt(500, 100), Label: "X"},
	)

	hits := gridHits(doc, "plan", callout, cs)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].Source.ID != "g-a" || hits[1].Source.ID != "g-b" {
		t.Errorf("hits out of order: %s, %s", hits[0].Source.ID, hits[1].Source.ID)
	}
	// Gridlines are treated as infinite: the drawn segments end at
	// y=100, far from the cut at y=500, and still intersect.
	if math.Abs(hits[0].T-0.25) > 1e-9 || math.Abs(hits[0].X-500) > 1e-9 {
		t.Errorf("hit A: t=%v x=%v, want t=0.25 x=500", hits[0].T, hits[0].X)
	}
	if !hits[0].Plan.Approx(draft.Pt(0, 500), 1e-6) {
		t.Errorf("hit A plan point = %v, want (0, 500)", hits[0].Plan)
	}
}

func TestSlabSpans_SquareCut(t *testing.T) {
	doc, callout := extractDoc()
	cs := NewCoordSystem(callout)

	doc.AddShapes(&document.Slab{
		Base:      document.Base{ID: "slab", Drawing: "plan"},
		Outline:   []draft.Point{draft.Pt(0, 0), draft.Pt(1000, 0), draft.Pt(1000, 1000), draft.Pt(0, 1000)},
		Elevation: 0, Thickness: 200,
	})

	spans := slabSpans(doc, "plan", callout, cs)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	sp := spans[0]
	if math.Abs(sp.T0-0.25) > 1e-9 || math.Abs(sp.T1-0.75) > 1e-9 {
		t.Errorf("t range = [%v, %v], want [0.25, 0.75]", sp.T0, sp.T1)
	}
	if width := sp.X1 - sp.X0; math.Abs(width-1000) > 1e-6 {
		t.Errorf("span width = %v, want 1000", width)
	}
}

func TestSlabSpans_Degenerate(t *testing.T) {
	doc, callout := extractDoc()
	cs := NewCoordSystem(callout)

	doc.AddShapes(
		// Too few points for a polygon.
		&document.Slab{
			Base:    document.Base{ID: "line-slab", Drawing: "plan"},
			Outline: []draft.Point{draft.Pt(0, 0), draft.Pt(1000, 0)},
		},
		// Entirely below the cut: no crossings.
		&document.Slab{
			Base:    document.Base{ID: "missed", Drawing: "plan"},
			Outline: []draft.Point{draft.Pt(0, 2000), draft.Pt(1000, 2000), draft.Pt(500, 3000)},
		},
		// Clipped corner: crossings 0.5 units apart, under the
		// sub-millimeter threshold.
		&document.Slab{
			Base:    document.Base{ID: "graze", Drawing: "plan"},
			Outline: []draft.Point{draft.Pt(100, 499.75), draft.Pt(100.5, 500.25), draft.Pt(99.5, 500.25)},
		},
	)

	if spans := slabSpans(doc, "plan", callout, cs); len(spans) != 0 {
		t.Errorf("got %d spans from degenerate slabs, want 0", len(spans))
	}
}

package section

import (
	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// Layout constants, in document units (millimeters).
const (
	// ViewMargin pads the section view beyond the callout span and the
	// outermost storey levels.
	ViewMargin = 2000
	// GridExtension extends section gridlines past the view margin so
	// their bubbles sit clear of the levels.
	GridExtension = 500
	// DefaultSlabThickness substitutes for slabs with no thickness set.
	DefaultSlabThickness = 200

	// defaultBoundaryHalf is the half-height of a section drawing when
	// the project has no storeys yet.
	defaultBoundaryHalf = 5000

	// dimensionOffset places pair dimensions above the topmost
	// gridline end; totalDimensionOffset pushes the total dimension
	// one step further from the drawing.
	dimensionOffset      = 500
	totalDimensionOffset = 1000
)

// Result is the full replacement content Compute derives for a
// section drawing. Slices keep generation order: gridlines ascending
// by section X, levels ascending by elevation, slabs in plan document
// order, dimensions left to right with the total dimension last.
type Result struct {
	Gridlines  []*document.Gridline
	Levels     []*document.LevelLine
	Slabs      []*document.SlabFill
	Dimensions []*document.LinearDimension
	Refs       []document.SectionRef
	Bounds     document.Rect
	Coords     CoordSystem
}

// Shapes flattens the result into one insertion-ordered shape list for
// document.ReplaceDerived.
func (r *Result) Shapes() []document.Shape {
	out := make([]document.Shape, 0,
		len(r.Gridlines)+len(r.Levels)+len(r.Slabs)+len(r.Dimensions))
	for _, g := range r.Gridlines {
		out = append(out, g)
	}
	for _, l := range r.Levels {
		out = append(out, l)
	}
	for _, s := range r.Slabs {
		out = append(out, s)
	}
	for _, d := range r.Dimensions {
		out = append(out, d)
	}
	return out
}

// Compute derives the content of one section drawing from the current
// document snapshot. ok is false when no callout targets the drawing
// or the callout's plan drawing cannot be found — both mean "nothing
// to derive", not a fault.
//
// The output is a pure function of the snapshot: regenerating with
// unchanged inputs yields an identical result apart from fresh shape
// identities.
func Compute(doc *document.Document, sectionID document.ID, opts ...Option) (*Result, bool) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dr, ok := doc.DrawingByID(sectionID)
	if !ok || dr.Kind != document.Section {
		return nil, false
	}
	callout, ok := doc.CalloutFor(sectionID)
	if !ok {
		return nil, false
	}
	plan, ok := doc.DrawingByID(callout.Drawing)
	if !ok || plan.Kind != document.Plan {
		return nil, false
	}

	cs := NewCoordSystem(callout)
	lo, hi, hasStoreys := doc.Structure.ElevationRange()
	yTop := YForElevation(hi + ViewMargin + GridExtension)
	yBot := YForElevation(lo - ViewMargin - GridExtension)
	layer := dr.DefaultLayer

	res := &Result{Coords: cs}

	hits := gridHits(doc, plan.ID, callout, cs)
	for _, h := range hits {
		res.Gridlines = append(res.Gridlines, &document.Gridline{
			Base: document.Base{
				ID:      document.NewID(),
				Drawing: sectionID,
				Layer:   layer,
				Derived: document.GridlineSource(h.Source.ID),
			},
			Start:        draft.Pt(h.X, yTop),
			End:          draft.Pt(h.X, yBot),
			Label:        h.Source.Label,
			BubbleRadius: h.Source.BubbleRadius,
			// A section shows each axis once: bubble on the start side only.
			BubbleStart: true,
			BubbleEnd:   false,
		})
		res.Refs = append(res.Refs, document.SectionRef{Drawing: plan.ID, Shape: h.Source.ID, X: h.X})
	}

	for _, st := range doc.Structure.SortedStoreys() {
		y := YForElevation(st.Elevation)
		res.Levels = append(res.Levels, &document.LevelLine{
			Base: document.Base{
				ID:      document.NewID(),
				Drawing: sectionID,
				Layer:   layer,
				Derived: document.StoreySource(st.ID),
			},
			Start: draft.Pt(-ViewMargin, y),
			End:   draft.Pt(cs.Length+ViewMargin, y),
			Label: FormatElevation(st.Elevation),
		})
	}

	for _, sp := range slabSpans(doc, plan.ID, callout, cs) {
		thickness := sp.Source.Thickness
		if thickness <= 0 {
			thickness = DefaultSlabThickness
		}
		top := YForElevation(sp.Source.Elevation)
		colors := colorsFor(sp.Source.Material)
		res.Slabs = append(res.Slabs, &document.SlabFill{
			Base: document.Base{
				ID:      document.NewID(),
				Drawing: sectionID,
				Layer:   layer,
				Derived: document.SlabSource(sp.Source.ID),
			},
			Rect:   document.RectOf(sp.X0, top, sp.X1, top+thickness),
			Fill:   colors.fill,
			Stroke: colors.stroke,
		})
		res.Refs = append(res.Refs, document.SectionRef{Drawing: plan.ID, Shape: sp.Source.ID, X: sp.X0})
	}

	if o.dimensions && len(hits) >= 2 {
		numbers := doc.Numbers
		if o.numbers != nil {
			numbers = *o.numbers
		}
		for i := 0; i < len(hits)-1; i++ {
			a, b := hits[i], hits[i+1]
			res.Dimensions = append(res.Dimensions, &document.LinearDimension{
				Base: document.Base{
					ID:      document.NewID(),
					Drawing: sectionID,
					Layer:   layer,
					Derived: document.GridPairSource(a.Source.ID, b.Source.ID),
				},
				From:   draft.Pt(a.X, yTop),
				To:     draft.Pt(b.X, yTop),
				Offset: dimensionOffset,
				Text:   numbers.Format(b.X - a.X),
			})
		}
		first, last := hits[0], hits[len(hits)-1]
		res.Dimensions = append(res.Dimensions, &document.LinearDimension{
			Base: document.Base{
				ID:      document.NewID(),
				Drawing: sectionID,
				Layer:   layer,
				Derived: document.GridPairSource(first.Source.ID, last.Source.ID),
			},
			From:   draft.Pt(first.X, yTop),
			To:     draft.Pt(last.X, yTop),
			Offset: totalDimensionOffset,
			Text:   numbers.Format(last.X - first.X),
		})
	}

	res.Bounds = boundary(cs.Length, lo, hi, hasStoreys)

	draft.Logger().Debug("section computed",
		"section", sectionID,
		"gridlines", len(res.Gridlines),
		"levels", len(res.Levels),
		"slabs", len(res.Slabs),
		"dimensions", len(res.Dimensions))
	return res, true
}

// Boundary computes a section drawing's boundary rectangle from its
// callout and the project structure: the callout span plus margins
// horizontally, the storey elevation range plus margins vertically, or
// a default half-height when no storeys exist yet.
func Boundary(c *document.SectionCallout, s document.Structure) document.Rect {
	cs := NewCoordSystem(c)
	lo, hi, ok := s.ElevationRange()
	return boundary(cs.Length, lo, hi, ok)
}

func boundary(length, lo, hi float64, hasStoreys bool) document.Rect {
	if !hasStoreys {
		return document.RectOf(-ViewMargin, -defaultBoundaryHalf, length+ViewMargin, defaultBoundaryHalf)
	}
	return document.RectOf(
		-ViewMargin, YForElevation(hi+ViewMargin+GridExtension),
		length+ViewMargin, YForElevation(lo-ViewMargin-GridExtension))
}

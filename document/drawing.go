package document

import "github.com/draftworks/draft"

// DrawingKind distinguishes the view a drawing presents.
type DrawingKind string

const (
	// Plan is a horizontal view at a given building storey.
	Plan DrawingKind = "plan"
	// Section is a vertical slice derived from a callout in a plan.
	Section DrawingKind = "section"
	// Detail is a free drawing not tied to the building structure.
	Detail DrawingKind = "detail"
)

// Rect is an axis-aligned rectangle in canvas coordinates,
// Min at the top-left (Y increases downward).
type Rect struct {
	Min draft.Point `json:"min"`
	Max draft.Point `json:"max"`
}

// RectOf returns the rectangle spanning the two corner coordinates,
// normalizing so Min <= Max on both axes.
func RectOf(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Min: draft.Pt(x0, y0), Max: draft.Pt(x1, y1)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// SectionRef records, on a section drawing, one source shape that
// contributed to the last regeneration and where it landed on the
// section axis. Refs are traceability data, rebuilt on every
// regeneration and never hand-edited.
type SectionRef struct {
	Drawing ID      `json:"drawing"` // source plan drawing
	Shape   ID      `json:"shape"`   // source shape in that drawing
	X       float64 `json:"x"`       // projected section-view X
}

// Drawing is a named 2D geometry container.
type Drawing struct {
	ID     ID          `json:"id"`
	Name   string      `json:"name"`
	Kind   DrawingKind `json:"kind"`
	Bounds Rect        `json:"bounds"`
	// Storey associates a plan drawing with its building storey.
	Storey ID `json:"storey,omitempty"`
	// Callout is the generating callout shape of a section drawing.
	Callout ID `json:"callout,omitempty"`
	// DefaultLayer receives shapes created in this drawing when no
	// layer is specified.
	DefaultLayer ID `json:"defaultLayer,omitempty"`
	// Refs is the source-reference index of the last regeneration.
	// Only set on section drawings.
	Refs []SectionRef `json:"refs,omitempty"`
}

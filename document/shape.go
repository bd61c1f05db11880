package document

import "github.com/draftworks/draft"

// Shape is any geometric object stored in a drawing.
//
// Concrete shape types embed Base. Shapes are always handled by
// pointer; the document owns them.
type Shape interface {
	ShapeID() ID
	DrawingID() ID
	LayerID() ID
	// Origin reports what a derived shape was generated from.
	// It is nil for user-drawn shapes.
	Origin() *SourceRef
}

// Base holds the identity fields common to every shape.
type Base struct {
	ID      ID `json:"id"`
	Drawing ID `json:"drawing"`
	Layer   ID `json:"layer,omitempty"`
	// Derived is set on shapes emitted by the section engine and
	// marks them replaceable on the next regeneration.
	Derived *SourceRef `json:"derived,omitempty"`
}

func (b Base) ShapeID() ID        { return b.ID }
func (b Base) DrawingID() ID      { return b.Drawing }
func (b Base) LayerID() ID        { return b.Layer }
func (b Base) Origin() *SourceRef { return b.Derived }

// Gridline is a structural axis line with a labeled bubble at one or
// both ends.
type Gridline struct {
	Base
	Start        draft.Point `json:"start"`
	End          draft.Point `json:"end"`
	Label        string      `json:"label"`
	BubbleRadius float64     `json:"bubbleRadius,omitempty"`
	BubbleStart  bool        `json:"bubbleStart,omitempty"`
	BubbleEnd    bool        `json:"bubbleEnd,omitempty"`
	// Grid is the project grid identity: the stable key shared by all
	// gridline instances (one per plan drawing) that represent the
	// same structural axis. Empty means the gridline is local to its
	// drawing and is not propagated.
	Grid ID `json:"grid,omitempty"`
}

// Direction returns the (non-normalized) direction vector of the line.
func (g *Gridline) Direction() draft.Point {
	return g.End.Sub(g.Start)
}

// Clone returns a copy of g with a fresh identity, placed in the given
// drawing and layer. Geometry, label, styling and the project grid
// identity are carried over.
func (g *Gridline) Clone(drawing, layer ID) *Gridline {
	c := *g
	c.ID = NewID()
	c.Drawing = drawing
	c.Layer = layer
	return &c
}

// Slab is a closed polygon with an elevation (top face, positive up)
// and a thickness. A slab belongs to exactly one plan drawing.
type Slab struct {
	Base
	Outline   []draft.Point `json:"outline"`
	Elevation float64       `json:"elevation"`
	Thickness float64       `json:"thickness,omitempty"`
	Material  string        `json:"material,omitempty"`
}

// SectionCallout is the cutting line drawn in a plan that generates a
// section drawing. Start and End define the cut in plan coordinates.
type SectionCallout struct {
	Base
	Start   draft.Point `json:"start"`
	End     draft.Point `json:"end"`
	Section ID          `json:"section"` // the section drawing this callout generates
}

// LevelLine is a horizontal storey marker in a section drawing,
// labeled with the formatted elevation. Always derived.
type LevelLine struct {
	Base
	Start draft.Point `json:"start"`
	End   draft.Point `json:"end"`
	Label string      `json:"label"`
}

// SlabFill is the filled rectangle a cut slab produces in a section
// drawing. Always derived.
type SlabFill struct {
	Base
	Rect   Rect       `json:"rect"`
	Fill   draft.RGBA `json:"fill"`
	Stroke draft.RGBA `json:"stroke"`
}

// LinearDimension is a dimension line between two points, offset from
// the measured span, with pre-formatted value text.
type LinearDimension struct {
	Base
	From   draft.Point `json:"from"`
	To     draft.Point `json:"to"`
	Offset float64     `json:"offset"`
	Text   string      `json:"text"`
}

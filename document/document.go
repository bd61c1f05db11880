package document

// Document is the full document snapshot: every drawing, every shape,
// the building structure, and document-wide settings. The host owns
// it; engine packages only read it.
type Document struct {
	Drawings  []*Drawing   `json:"drawings"`
	Shapes    []Shape      `json:"shapes"`
	Structure Structure    `json:"structure"`
	Numbers   NumberFormat `json:"numbers"`
}

// DrawingByID resolves a drawing identity.
func (d *Document) DrawingByID(id ID) (*Drawing, bool) {
	for _, dr := range d.Drawings {
		if dr.ID == id {
			return dr, true
		}
	}
	return nil, false
}

// DrawingByName resolves a drawing by its user-visible name.
func (d *Document) DrawingByName(name string) (*Drawing, bool) {
	for _, dr := range d.Drawings {
		if dr.Name == name {
			return dr, true
		}
	}
	return nil, false
}

// PlanDrawings returns all plan drawings in storage order, which is
// creation order. Grid propagation relies on this order being
// deterministic.
func (d *Document) PlanDrawings() []*Drawing {
	var out []*Drawing
	for _, dr := range d.Drawings {
		if dr.Kind == Plan {
			out = append(out, dr)
		}
	}
	return out
}

// SectionDrawings returns all section drawings in storage order.
func (d *Document) SectionDrawings() []*Drawing {
	var out []*Drawing
	for _, dr := range d.Drawings {
		if dr.Kind == Section {
			out = append(out, dr)
		}
	}
	return out
}

// ShapesIn returns all shapes of one drawing in storage order.
func (d *Document) ShapesIn(drawing ID) []Shape {
	var out []Shape
	for _, s := range d.Shapes {
		if s.DrawingID() == drawing {
			out = append(out, s)
		}
	}
	return out
}

// Gridlines returns the gridlines of one drawing in storage order.
func (d *Document) Gridlines(drawing ID) []*Gridline {
	var out []*Gridline
	for _, s := range d.Shapes {
		if g, ok := s.(*Gridline); ok && g.Drawing == drawing {
			out = append(out, g)
		}
	}
	return out
}

// Slabs returns the slabs of one drawing in storage order.
func (d *Document) Slabs(drawing ID) []*Slab {
	var out []*Slab
	for _, s := range d.Shapes {
		if sl, ok := s.(*Slab); ok && sl.Drawing == drawing {
			out = append(out, sl)
		}
	}
	return out
}

// CalloutFor finds the callout shape that generates the given section
// drawing. ok is false when no callout targets it, which the engine
// treats as "nothing to derive".
func (d *Document) CalloutFor(section ID) (*SectionCallout, bool) {
	for _, s := range d.Shapes {
		if c, ok := s.(*SectionCallout); ok && c.Section == section {
			return c, true
		}
	}
	return nil, false
}

// ShapeByID resolves a shape identity.
func (d *Document) ShapeByID(id ID) (Shape, bool) {
	for _, s := range d.Shapes {
		if s.ShapeID() == id {
			return s, true
		}
	}
	return nil, false
}

// AddShapes appends shapes to the document.
func (d *Document) AddShapes(shapes ...Shape) {
	d.Shapes = append(d.Shapes, shapes...)
}

// RemoveShapes deletes the shapes with the given identities and
// returns how many were removed.
func (d *Document) RemoveShapes(ids ...ID) int {
	drop := make(map[ID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := d.Shapes[:0]
	removed := 0
	for _, s := range d.Shapes {
		if drop[s.ShapeID()] {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	d.Shapes = kept
	return removed
}

// ReplaceDerived removes every derived shape of the given section
// drawing and inserts the replacement set. This is the host-side
// application of the engine's full-replacement contract: the derived
// subset after the call is exactly the replacement set.
func (d *Document) ReplaceDerived(section ID, shapes []Shape) {
	kept := d.Shapes[:0]
	for _, s := range d.Shapes {
		if s.DrawingID() == section && s.Origin() != nil {
			continue
		}
		kept = append(kept, s)
	}
	d.Shapes = append(kept, shapes...)
}

package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/draftworks/draft"
)

// JSON round-trip of the whole document. Shapes are stored as tagged
// envelopes so the Shape interface survives serialization. Unknown
// shape types are skipped on load, matching the forgiving behavior of
// the interchange importers: one foreign shape never fails a document.

type shapeEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type documentJSON struct {
	Drawings  []*Drawing      `json:"drawings"`
	Shapes    []shapeEnvelope `json:"shapes"`
	Structure Structure       `json:"structure"`
	Numbers   NumberFormat    `json:"numbers"`
}

func shapeTypeName(s Shape) (string, bool) {
	switch s.(type) {
	case *Gridline:
		return "gridline", true
	case *Slab:
		return "slab", true
	case *SectionCallout:
		return "callout", true
	case *LevelLine:
		return "level", true
	case *SlabFill:
		return "slabfill", true
	case *LinearDimension:
		return "dimension", true
	}
	return "", false
}

func decodeShape(env shapeEnvelope) (Shape, error) {
	var s Shape
	switch env.Type {
	case "gridline":
		s = &Gridline{}
	case "slab":
		s = &Slab{}
	case "callout":
		s = &SectionCallout{}
	case "level":
		s = &LevelLine{}
	case "slabfill":
		s = &SlabFill{}
	case "dimension":
		s = &LinearDimension{}
	default:
		return nil, nil
	}
	if err := json.Unmarshal(env.Data, s); err != nil {
		return nil, fmt.Errorf("decode %s shape: %w", env.Type, err)
	}
	return s, nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{
		Drawings:  d.Drawings,
		Structure: d.Structure,
		Numbers:   d.Numbers,
		Shapes:    make([]shapeEnvelope, 0, len(d.Shapes)),
	}
	for _, s := range d.Shapes {
		name, ok := shapeTypeName(s)
		if !ok {
			draft.Logger().Warn("skipping unknown shape type on save", "id", s.ShapeID())
			continue
		}
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode %s shape %s: %w", name, s.ShapeID(), err)
		}
		out.Shapes = append(out.Shapes, shapeEnvelope{Type: name, Data: data})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	d.Drawings = in.Drawings
	d.Structure = in.Structure
	d.Numbers = in.Numbers
	d.Shapes = d.Shapes[:0]
	for _, env := range in.Shapes {
		s, err := decodeShape(env)
		if err != nil {
			return err
		}
		if s == nil {
			draft.Logger().Warn("skipping unknown shape type on load", "type", env.Type)
			continue
		}
		d.Shapes = append(d.Shapes, s)
	}
	return nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Load reads a document saved with Save.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return &d, nil
}

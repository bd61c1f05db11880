package document

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/draftworks/draft"
)

func TestDocument_SaveLoad(t *testing.T) {
	doc := testDocument()
	doc.Numbers = NumberFormat{Locale: "de", Decimals: 1}
	doc.AddShapes(
		&LevelLine{Base: Base{ID: "lvl", Drawing: "sec-1", Derived: StoreySource("st-0")}, Start: draft.Pt(-2000, 0), End: draft.Pt(4000, 0), Label: "± 0.000"},
		&SlabFill{Base: Base{ID: "fill", Drawing: "sec-1", Derived: SlabSource("sl-1")}, Rect: RectOf(500, 0, 1500, 200)},
		&LinearDimension{Base: Base{ID: "dim", Drawing: "sec-1", Derived: GridPairSource("g-1", "g-2")}, From: draft.Pt(0, -5000), To: draft.Pt(1000, -5000), Offset: 500, Text: "1,000"},
	)

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(loaded.Shapes) != len(doc.Shapes) {
		t.Fatalf("loaded %d shapes, want %d", len(loaded.Shapes), len(doc.Shapes))
	}
	if len(loaded.Drawings) != 3 {
		t.Errorf("loaded %d drawings, want 3", len(loaded.Drawings))
	}
	if loaded.Numbers != doc.Numbers {
		t.Errorf("Numbers = %+v, want %+v", loaded.Numbers, doc.Numbers)
	}

	g, ok := loaded.ShapeByID("g-1")
	if !ok {
		t.Fatal("gridline missing after round trip")
	}
	gl, ok := g.(*Gridline)
	if !ok {
		t.Fatalf("g-1 decoded as %T, want *Gridline", g)
	}
	if gl.Grid != "g-1" || !gl.Start.Approx(draft.Pt(0, -500), 1e-9) {
		t.Errorf("gridline fields lost: %+v", gl)
	}

	lvl, _ := loaded.ShapeByID("lvl")
	if ref := lvl.Origin(); ref == nil || ref.Kind != FromStorey || ref.ID != "st-0" {
		t.Errorf("level SourceRef lost: %+v", lvl.Origin())
	}
	dim, _ := loaded.ShapeByID("dim")
	if ref := dim.Origin(); ref == nil || ref.Kind != FromGridPair || ref.Second != "g-2" {
		t.Errorf("dimension SourceRef lost: %+v", dim.Origin())
	}
}

func TestDocument_UnknownShapeSkippedOnLoad(t *testing.T) {
	raw := []byte(`{
		"drawings": [],
		"shapes": [
			{"type": "hologram", "data": {"id": "x"}},
			{"type": "gridline", "data": {"id": "g", "drawing": "p", "start": {"X": 0, "Y": 0}, "end": {"X": 1, "Y": 0}, "label": "A"}}
		],
		"structure": {},
		"numbers": {"decimals": 0}
	}`)

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Shapes) != 1 {
		t.Fatalf("got %d shapes, want 1 (unknown type skipped)", len(doc.Shapes))
	}
	if doc.Shapes[0].ShapeID() != "g" {
		t.Errorf("kept shape = %v", doc.Shapes[0].ShapeID())
	}
}

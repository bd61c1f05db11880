// Package export writes drawings to interchange formats.
package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// labelHeight is the DXF text height for gridline labels and level
// elevations, in document units.
const labelHeight = 250.0

// DXF writes one drawing's shapes to a DXF file. Line-like shapes map
// to LINE entities, slab outlines and fills to LWPOLYLINE, labels to
// TEXT. Shape kinds with no DXF equivalent are skipped; a single
// unexportable shape never fails the export.
//
// DXF Y grows upward while canvas Y grows downward, so all Y
// coordinates are negated on the way out.
func DXF(doc *document.Document, drawingID document.ID, path string) error {
	dr, ok := doc.DrawingByID(drawingID)
	if !ok {
		return fmt.Errorf("export dxf: no drawing %s", drawingID)
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("SHAPES", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export dxf: %w", err)
	}
	if _, err := d.AddLayer("DERIVED", dxfcolor.Cyan, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("export dxf: %w", err)
	}

	for _, s := range doc.ShapesIn(dr.ID) {
		layer := "SHAPES"
		if s.Origin() != nil {
			layer = "DERIVED"
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("export dxf: %w", err)
		}
		exportShape(d, s)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export dxf: %w", err)
	}
	return nil
}

func exportShape(d *drawing.Drawing, s document.Shape) {
	switch v := s.(type) {
	case *document.Gridline:
		line(d, v.Start, v.End)
		if v.Label != "" {
			text(d, v.Label, v.Start)
		}
	case *document.SectionCallout:
		line(d, v.Start, v.End)
	case *document.LevelLine:
		line(d, v.Start, v.End)
		if v.Label != "" {
			text(d, v.Label, v.Start)
		}
	case *document.Slab:
		polygon(d, v.Outline)
	case *document.SlabFill:
		r := v.Rect
		polygon(d, []draft.Point{
			r.Min,
			draft.Pt(r.Max.X, r.Min.Y),
			r.Max,
			draft.Pt(r.Min.X, r.Max.Y),
		})
	case *document.LinearDimension:
		line(d, v.From, v.To)
		if v.Text != "" {
			text(d, v.Text, v.From.Midpoint(v.To))
		}
	default:
		draft.Logger().Debug("skipping shape with no dxf mapping", "id", s.ShapeID())
	}
}

func line(d *drawing.Drawing, a, b draft.Point) {
	d.Line(a.X, -a.Y, 0, b.X, -b.Y, 0)
}

func text(d *drawing.Drawing, str string, at draft.Point) {
	d.Text(str, at.X, -at.Y, 0, labelHeight)
}

func polygon(d *drawing.Drawing, pts []draft.Point) {
	if len(pts) < 2 {
		return
	}
	vertices := make([][]float64, len(pts))
	for i, p := range pts {
		vertices[i] = []float64{p.X, -p.Y}
	}
	d.LwPolyline(true, vertices...)
}

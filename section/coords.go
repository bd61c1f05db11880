package section

import (
	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// CoordSystem is the 1D projection axis a cutting callout defines.
// A point at parametric position t in [0,1] along the callout maps to
// section-view X = t * Length. The vertical axis is independent:
// section-view Y is the negated elevation, because canvas Y grows
// downward while elevations grow upward.
type CoordSystem struct {
	Origin draft.Point // callout start in plan coordinates
	Dir    draft.Point // unit direction along the callout
	Length float64     // callout length in document units
}

// NewCoordSystem builds the projection axis for a callout. A
// degenerate callout (start ≈ end) gets the unit X direction so the
// system stays usable.
func NewCoordSystem(c *document.SectionCallout) CoordSystem {
	d := c.End.Sub(c.Start)
	length := d.Length()
	dir := draft.Pt(1, 0)
	if length > 0 {
		dir = d.Mul(1 / length)
	}
	return CoordSystem{Origin: c.Start, Dir: dir, Length: length}
}

// X maps a callout parameter to a section-view X coordinate.
func (cs CoordSystem) X(t float64) float64 {
	return t * cs.Length
}

// T maps a section-view X coordinate back to a callout parameter.
// ok is false for a degenerate (zero length) axis.
func (cs CoordSystem) T(x float64) (float64, bool) {
	if cs.Length == 0 {
		return 0, false
	}
	return x / cs.Length, true
}

// PlanPoint maps a callout parameter to plan coordinates.
func (cs CoordSystem) PlanPoint(t float64) draft.Point {
	return cs.Origin.Add(cs.Dir.Mul(t * cs.Length))
}

// YForElevation converts a building elevation to section-view Y.
func YForElevation(elevation float64) float64 {
	return -elevation
}

// ElevationForY converts a section-view Y back to a building elevation.
func ElevationForY(y float64) float64 {
	return -y
}

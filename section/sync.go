package section

import (
	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// Reverse synchronization: a user moved a derived shape in the section
// view and the edit must flow back to the plan source. The functions
// here only compute the source mutation; the host locates the source
// via the moved shape's Origin and applies the change through its own
// transactional mechanism, which in turn re-triggers forward
// regeneration. Only gridlines and levels sync back; slab fills are
// not independently re-positionable from the section view.

// SyncGridlineFromSection maps a moved derived section gridline back
// to new endpoints for its source plan gridline. The source is shifted
// rigidly along its own perpendicular, direction preserved, so that it
// passes through the plan point recovered from the new section X.
// ok is false when the coordinate system or the source gridline is
// degenerate (zero length).
func SyncGridlineFromSection(moved *document.Gridline, cs CoordSystem, source *document.Gridline) (start, end draft.Point, ok bool) {
	t, ok := cs.T(moved.Start.X)
	if !ok {
		return draft.Point{}, draft.Point{}, false
	}
	target := cs.PlanPoint(t)

	dir := source.Direction()
	if dir.Length() == 0 {
		draft.Logger().Warn("cannot sync degenerate gridline", "source", source.ID)
		return draft.Point{}, draft.Point{}, false
	}
	perp := dir.Normalize().Perp()

	// Signed perpendicular distance from the old line to the target
	// point; translating both endpoints by it keeps the direction and
	// puts the line through the target.
	offset := target.Sub(source.Start.Midpoint(source.End)).Dot(perp)
	shift := perp.Mul(offset)
	return source.Start.Add(shift), source.End.Add(shift), true
}

// SyncLevelFromSection returns the storey elevation a moved level line
// now indicates. The host resolves the owning storey from the level's
// Origin (a FromStorey reference) and applies the elevation.
func SyncLevelFromSection(moved *document.LevelLine) float64 {
	return ElevationForY(moved.Start.Y)
}

// Package grid keeps structural gridlines consistent across plan
// drawings. Every structural axis has one gridline instance per plan
// drawing; all instances share a project grid identity and must have
// identical geometry, label and styling after any propagating
// operation completes.
//
// The package computes propagation results (clones, attribute updates,
// delete cascades) from a document snapshot; applying them is the
// host's job, inside its own transactional mutation mechanism.
package grid

import (
	"github.com/draftworks/draft"
	"github.com/draftworks/draft/document"
)

// EnsureIdentity assigns a project grid identity to a gridline that
// lacks one: the gridline's own identity becomes the canonical key.
// The first instance of an axis is therefore the canonical owner, and
// re-running the assignment is a no-op.
func EnsureIdentity(g *document.Gridline) {
	if g.Grid == "" {
		g.Grid = g.ID
	}
}

// Registry indexes the gridline instances of every project grid
// identity in deterministic creation order: plan drawings in document
// order, shapes in document order within a drawing. The first indexed
// member of an identity is its representative.
type Registry struct {
	order   []document.ID
	members map[document.ID][]*document.Gridline
}

// Index builds a registry from the snapshot. Gridlines without a
// project grid identity are local to their drawing and are not
// indexed.
func Index(doc *document.Document) *Registry {
	r := &Registry{members: make(map[document.ID][]*document.Gridline)}
	for _, dr := range doc.PlanDrawings() {
		for _, g := range doc.Gridlines(dr.ID) {
			if g.Grid == "" {
				continue
			}
			if _, seen := r.members[g.Grid]; !seen {
				r.order = append(r.order, g.Grid)
			}
			r.members[g.Grid] = append(r.members[g.Grid], g)
		}
	}
	return r
}

// Identities returns the project grid identities in creation order.
func (r *Registry) Identities() []document.ID {
	return r.order
}

// Members returns the instances of one identity in creation order.
func (r *Registry) Members(grid document.ID) []*document.Gridline {
	return r.members[grid]
}

// Representative returns the canonical instance of one identity: the
// first member in creation order.
func (r *Registry) Representative(grid document.ID) (*document.Gridline, bool) {
	m := r.members[grid]
	if len(m) == 0 {
		return nil, false
	}
	return m[0], true
}

// Clones prepares the propagation of a newly created gridline: one
// clone per other plan drawing, placed on that drawing's default
// layer. The gridline is given a project grid identity first if it
// lacks one. Drawings that already hold an instance of the identity
// are skipped, so applying the result twice cannot duplicate an axis.
func Clones(doc *document.Document, g *document.Gridline) []*document.Gridline {
	EnsureIdentity(g)
	reg := Index(doc)
	present := make(map[document.ID]bool)
	for _, m := range reg.Members(g.Grid) {
		present[m.Drawing] = true
	}

	var out []*document.Gridline
	for _, dr := range doc.PlanDrawings() {
		if dr.ID == g.Drawing || present[dr.ID] {
			continue
		}
		out = append(out, g.Clone(dr.ID, dr.DefaultLayer))
	}
	return out
}

// CloneProjectGridlines prepares the population of a newly created
// plan drawing: one clone per distinct project grid identity, taken
// from the identity's representative and placed on the new drawing's
// layer. Legacy gridlines still missing an identity are retroactively
// self-assigned so the new drawing sees every axis.
func CloneProjectGridlines(doc *document.Document, newDrawing, newLayer document.ID) []*document.Gridline {
	seen := make(map[document.ID]bool)
	var out []*document.Gridline
	for _, dr := range doc.PlanDrawings() {
		if dr.ID == newDrawing {
			continue
		}
		for _, g := range doc.Gridlines(dr.ID) {
			EnsureIdentity(g)
			if seen[g.Grid] {
				continue
			}
			seen[g.Grid] = true
			out = append(out, g.Clone(newDrawing, newLayer))
		}
	}
	return out
}

// GridlineUpdate carries the attribute propagation for one sibling of
// an edited gridline. Identity and container fields are untouched.
type GridlineUpdate struct {
	Target       *document.Gridline
	Start, End   draft.Point
	Label        string
	BubbleRadius float64
	BubbleStart  bool
	BubbleEnd    bool
}

// Apply writes the propagated attributes onto the target.
func (u GridlineUpdate) Apply() {
	u.Target.Start = u.Start
	u.Target.End = u.End
	u.Target.Label = u.Label
	u.Target.BubbleRadius = u.BubbleRadius
	u.Target.BubbleStart = u.BubbleStart
	u.Target.BubbleEnd = u.BubbleEnd
}

// PropagateEdit computes the updates that bring every sibling of an
// edited gridline back in line with it. A local gridline (no project
// grid identity) has no siblings.
func PropagateEdit(doc *document.Document, edited *document.Gridline) []GridlineUpdate {
	if edited.Grid == "" {
		return nil
	}
	var out []GridlineUpdate
	for _, m := range Index(doc).Members(edited.Grid) {
		if m.ID == edited.ID {
			continue
		}
		out = append(out, GridlineUpdate{
			Target:       m,
			Start:        edited.Start,
			End:          edited.End,
			Label:        edited.Label,
			BubbleRadius: edited.BubbleRadius,
			BubbleStart:  edited.BubbleStart,
			BubbleEnd:    edited.BubbleEnd,
		})
	}
	return out
}

// CascadeDelete returns the identities of every gridline that must go
// when one instance of an axis is deleted: the instance itself plus
// all siblings sharing its project grid identity.
func CascadeDelete(doc *document.Document, g *document.Gridline) []document.ID {
	if g.Grid == "" {
		return []document.ID{g.ID}
	}
	ids := []document.ID{g.ID}
	for _, m := range Index(doc).Members(g.Grid) {
		if m.ID != g.ID {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

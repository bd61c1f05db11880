package grid

import "github.com/draftworks/draft/document"

// geomEps is the tolerance for the consistency check. Members of one
// identity are written with identical coordinates, so anything beyond
// float noise is a real divergence.
const geomEps = 1e-9

// Inconsistency reports a gridline instance whose attributes diverge
// from its identity's representative.
type Inconsistency struct {
	Grid           document.ID
	Representative *document.Gridline
	Member         *document.Gridline
}

// Check verifies the grid consistency invariant: for every project
// grid identity, all member instances have equal start, end and label.
// It returns one entry per diverging member, in creation order.
func Check(doc *document.Document) []Inconsistency {
	reg := Index(doc)
	var out []Inconsistency
	for _, id := range reg.Identities() {
		members := reg.Members(id)
		rep := members[0]
		for _, m := range members[1:] {
			if m.Start.Approx(rep.Start, geomEps) &&
				m.End.Approx(rep.End, geomEps) &&
				m.Label == rep.Label {
				continue
			}
			out = append(out, Inconsistency{Grid: id, Representative: rep, Member: m})
		}
	}
	return out
}

// Repair computes the updates that restore consistency by propagating
// each representative onto its diverging members.
func Repair(doc *document.Document) []GridlineUpdate {
	var out []GridlineUpdate
	for _, inc := range Check(doc) {
		rep := inc.Representative
		out = append(out, GridlineUpdate{
			Target:       inc.Member,
			Start:        rep.Start,
			End:          rep.End,
			Label:        rep.Label,
			BubbleRadius: rep.BubbleRadius,
			BubbleStart:  rep.BubbleStart,
			BubbleEnd:    rep.BubbleEnd,
		})
	}
	return out
}

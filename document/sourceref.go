package document

// SourceKind discriminates what a derived shape was generated from.
type SourceKind string

const (
	// FromGridline marks a section gridline derived from a plan gridline.
	FromGridline SourceKind = "gridline"
	// FromStorey marks a level line derived from a storey elevation.
	FromStorey SourceKind = "storey"
	// FromSlab marks a slab fill derived from a plan slab polygon.
	FromSlab SourceKind = "slab"
	// FromGridPair marks a dimension spanning two section gridlines.
	FromGridPair SourceKind = "gridpair"
)

// SourceRef links a derived shape back to the source it was generated
// from. Every shape the section engine emits carries one; user-drawn
// shapes carry none. The reference is what makes regeneration able to
// replace prior output and what reverse synchronization resolves.
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   ID         `json:"id"`
	// Second is set only for FromGridPair: the right-hand gridline of
	// a dimension's pair.
	Second ID `json:"second,omitempty"`
}

// GridlineSource returns a reference to a source plan gridline.
func GridlineSource(id ID) *SourceRef {
	return &SourceRef{Kind: FromGridline, ID: id}
}

// StoreySource returns a reference to a source storey.
func StoreySource(id ID) *SourceRef {
	return &SourceRef{Kind: FromStorey, ID: id}
}

// SlabSource returns a reference to a source slab.
func SlabSource(id ID) *SourceRef {
	return &SourceRef{Kind: FromSlab, ID: id}
}

// GridPairSource returns a reference to an ordered pair of source
// gridlines, left to right along the section axis.
func GridPairSource(left, right ID) *SourceRef {
	return &SourceRef{Kind: FromGridPair, ID: left, Second: right}
}

package document

import "github.com/google/uuid"

// ID identifies a shape, drawing, layer, storey or building.
// IDs are opaque; equality is the only defined operation.
type ID string

// NewID returns a fresh random identity.
func NewID() ID {
	return ID(uuid.NewString())
}

package document

import "sort"

// Storey is a named elevation level in a building. Elevation is the
// signed distance along the vertical axis in document units, positive
// up. Storeys are ordered by elevation but not required to be sorted
// in storage.
type Storey struct {
	ID        ID      `json:"id"`
	Name      string  `json:"name"`
	Elevation float64 `json:"elevation"`
}

// Building groups storeys in the project's spatial hierarchy.
type Building struct {
	ID      ID        `json:"id"`
	Name    string    `json:"name"`
	Storeys []*Storey `json:"storeys,omitempty"`
}

// Structure is the project's spatial hierarchy.
type Structure struct {
	Buildings []*Building `json:"buildings,omitempty"`
}

// Storeys returns all storeys across all buildings in storage order.
func (s Structure) Storeys() []*Storey {
	var out []*Storey
	for _, b := range s.Buildings {
		out = append(out, b.Storeys...)
	}
	return out
}

// SortedStoreys returns all storeys ordered by ascending elevation.
// The sort is stable so equal elevations keep storage order.
func (s Structure) SortedStoreys() []*Storey {
	out := s.Storeys()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Elevation < out[j].Elevation
	})
	return out
}

// ElevationRange returns the lowest and highest storey elevation.
// ok is false when the project has no storeys yet.
func (s Structure) ElevationRange() (lo, hi float64, ok bool) {
	for _, st := range s.Storeys() {
		if !ok {
			lo, hi, ok = st.Elevation, st.Elevation, true
			continue
		}
		if st.Elevation < lo {
			lo = st.Elevation
		}
		if st.Elevation > hi {
			hi = st.Elevation
		}
	}
	return lo, hi, ok
}

// StoreyByID resolves a storey identity.
func (s Structure) StoreyByID(id ID) (*Storey, bool) {
	for _, b := range s.Buildings {
		for _, st := range b.Storeys {
			if st.ID == id {
				return st, true
			}
		}
	}
	return nil, false
}

package rocket

import (
	"slices"

	"github.com/matzehuels/rocket/pkg/parts"
)

// Rocket is a finished, immutable sequence of parts ordered from the top
// row to the bottom row. It shares its parts with the catalog it was built
// from.
type Rocket struct {
	maxHeight int
	ratio     float64
	sections  []*parts.Part
}

// Sections returns the parts from top to bottom.
func (r *Rocket) Sections() []*parts.Part {
	return slices.Clone(r.sections)
}

// Len returns the number of sections.
func (r *Rocket) Len() int {
	return len(r.sections)
}

// Height returns the total number of rows across all sections.
func (r *Rocket) Height() int {
	h := 0
	for _, p := range r.sections {
		h += p.Height
	}
	return h
}

// MaxHeight returns the height the rocket was built for.
func (r *Rocket) MaxHeight() int {
	return r.maxHeight
}

// Ratio returns the body/decoration ratio used while building.
func (r *Rocket) Ratio() float64 {
	return r.ratio
}

// IDs returns the part IDs from top to bottom.
func (r *Rocket) IDs() []string {
	ids := make([]string, len(r.sections))
	for i, p := range r.sections {
		ids[i] = p.ID
	}
	return ids
}

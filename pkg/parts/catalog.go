package parts

import (
	"strings"
	"sync"

	"github.com/matzehuels/rocket/pkg/errors"
)

// Predicate selects parts from a catalog.
type Predicate func(*Part) bool

// MaxHeight matches parts no taller than h rows.
func MaxHeight(h int) Predicate {
	return func(p *Part) bool { return p.Height <= h }
}

// All matches parts that satisfy every predicate.
func All(preds ...Predicate) Predicate {
	return func(p *Part) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Any matches parts that satisfy at least one predicate.
func Any(preds ...Predicate) Predicate {
	return func(p *Part) bool {
		for _, pred := range preds {
			if pred(p) {
				return true
			}
		}
		return false
	}
}

// Catalog is an immutable, ordered set of parts.
type Catalog struct {
	parts []Part
	byID  map[string]*Part
}

// New validates defs and returns a catalog holding a private copy of them.
// Catalog order follows defs and determines query result order.
//
// A catalog must hold at least one nose cone (Transition{Width: 0}) and one
// engine, every ID must be unique, and every part must have a positive
// weight, non-negative widths and a Height equal to its number of rows.
func New(defs []Part) (*Catalog, error) {
	c := &Catalog{
		parts: make([]Part, len(defs)),
		byID:  make(map[string]*Part, len(defs)),
	}
	copy(c.parts, defs)

	var hasNose, hasEngine bool
	for i := range c.parts {
		p := &c.parts[i]
		if err := validatePart(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate part id %q", p.ID)
		}
		c.byID[p.ID] = p
		hasNose = hasNose || p.Category == (Transition{Width: 0})
		hasEngine = hasEngine || p.Category.Kind() == KindEngine
	}
	if !hasNose {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog has no nose cone (Transition(0) part)")
	}
	if !hasEngine {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog has no engine part")
	}
	return c, nil
}

func validatePart(p *Part) error {
	if err := errors.ValidatePartID(p.ID); err != nil {
		return err
	}
	if err := errors.ValidateShape(p.ID, p.Shape); err != nil {
		return err
	}
	if p.Category == nil {
		return errors.New(errors.ErrCodeInvalidCatalog, "part %q has no category", p.ID)
	}
	if rows := strings.Count(p.Shape, "\n") + 1; p.Height != rows {
		return errors.New(errors.ErrCodeInvalidCatalog, "part %q has height %d but %d rows", p.ID, p.Height, rows)
	}
	if p.Weight <= 0 {
		return errors.New(errors.ErrCodeInvalidCatalog, "part %q must have a positive weight", p.ID)
	}
	if w, _ := WidthOf(p.Category); p.Connector < 0 || w < 0 {
		return errors.New(errors.ErrCodeInvalidCatalog, "part %q has a negative width", p.ID)
	}
	return nil
}

// Query returns every part matching pred, in catalog order.
// The result is freshly allocated; the parts are shared.
func (c *Catalog) Query(pred Predicate) []*Part {
	var out []*Part
	for i := range c.parts {
		if p := &c.parts[i]; pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// Parts returns every part in catalog order.
func (c *Catalog) Parts() []*Part {
	return c.Query(func(*Part) bool { return true })
}

// Lookup returns the part with the given ID.
func (c *Catalog) Lookup(id string) (*Part, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of parts.
func (c *Catalog) Len() int {
	return len(c.parts)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(defaultParts)
	if err != nil {
		panic("parts: invalid built-in catalog: " + err.Error())
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

package parts

import (
	"fmt"
	"strings"
)

// Kind names a category variant without its width payload.
type Kind uint8

const (
	KindTip Kind = iota
	KindBody
	KindTransition
	KindEngine
	KindExhaust
)

var kindNames = [...]string{
	KindTip:        "tip",
	KindBody:       "body",
	KindTransition: "transition",
	KindEngine:     "engine",
	KindExhaust:    "exhaust",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind maps a lowercase kind name back to its [Kind].
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Category is the closed set of part categories. Values are comparable, so
// two categories are equal exactly when their variant and width match.
type Category interface {
	Kind() Kind
	String() string
	category()
}

// Tip is a nose ornament.
type Tip struct{}

// Body is a straight section.
type Body struct{}

// Transition changes the joint width. Width is the joint it attaches under.
type Transition struct{ Width int }

// Engine closes the body. Width is the joint it attaches under.
type Engine struct{ Width int }

// Exhaust trails below the engine. Width is the joint it attaches under.
type Exhaust struct{ Width int }

func (Tip) Kind() Kind        { return KindTip }
func (Body) Kind() Kind       { return KindBody }
func (Transition) Kind() Kind { return KindTransition }
func (Engine) Kind() Kind     { return KindEngine }
func (Exhaust) Kind() Kind    { return KindExhaust }

func (Tip) String() string          { return "Tip" }
func (Body) String() string         { return "Body" }
func (c Transition) String() string { return fmt.Sprintf("Transition(%d)", c.Width) }
func (c Engine) String() string     { return fmt.Sprintf("Engine(%d)", c.Width) }
func (c Exhaust) String() string    { return fmt.Sprintf("Exhaust(%d)", c.Width) }

func (Tip) category()        {}
func (Body) category()       {}
func (Transition) category() {}
func (Engine) category()     {}
func (Exhaust) category()    {}

// NewCategory builds the category for kind. The width is ignored for
// [KindTip] and [KindBody].
func NewCategory(kind Kind, width int) (Category, error) {
	switch kind {
	case KindTip:
		return Tip{}, nil
	case KindBody:
		return Body{}, nil
	case KindTransition:
		return Transition{Width: width}, nil
	case KindEngine:
		return Engine{Width: width}, nil
	case KindExhaust:
		return Exhaust{Width: width}, nil
	}
	return nil, fmt.Errorf("unknown part kind %v", kind)
}

// WidthOf returns the width payload of c. The second result is false for
// categories that carry none.
func WidthOf(c Category) (int, bool) {
	switch c := c.(type) {
	case Transition:
		return c.Width, true
	case Engine:
		return c.Width, true
	case Exhaust:
		return c.Width, true
	}
	return 0, false
}

// Part is a single ASCII-art fragment. Parts handed out by a [Catalog] are
// shared and must not be modified.
type Part struct {
	ID        string   // Stable identifier (e.g. "body-wide-window")
	Shape     string   // Rows of text separated by "\n"
	Height    int      // Number of rows in Shape
	Connector int      // Joint width at the bottom edge
	Category  Category // Variant plus the joint width it attaches under
	Weight    int      // Relative selection likelihood
}

// Rows returns the shape split into its rows.
func (p *Part) Rows() []string {
	return strings.Split(p.Shape, "\n")
}

// Top returns the joint width at the top edge: the category width for
// transitions, engines and exhausts, the connector for bodies, and 0 for tips.
func (p *Part) Top() int {
	if w, ok := WidthOf(p.Category); ok {
		return w
	}
	if p.Category == (Body{}) {
		return p.Connector
	}
	return 0
}

func (p *Part) String() string {
	return p.Shape
}

// CanStack reports whether lower may sit directly beneath upper.
//
// Tips only ever stack on other tips or on a nose cone. Everything else
// stacks when the bottom joint of upper equals the top joint of lower.
func CanStack(upper, lower *Part) bool {
	if upper.Category == (Tip{}) {
		return lower.Category == (Tip{}) || lower.Category == (Transition{Width: 0})
	}
	if lower.Category == (Tip{}) {
		return false
	}
	return upper.Connector == lower.Top()
}

package rocket

import "github.com/matzehuels/rocket/pkg/parts"

// NoseCone matches Transition(0) parts that fit in remaining rows.
func NoseCone(remaining int) parts.Predicate {
	return func(p *parts.Part) bool {
		return p.Category == parts.Transition{Width: 0} && p.Height <= remaining
	}
}

// Hull matches transitions attaching under a connector-wide joint, and
// bodies of that width, no taller than maxHeight.
func Hull(connector, maxHeight int) parts.Predicate {
	return func(p *parts.Part) bool {
		if p.Height > maxHeight {
			return false
		}
		return p.Category == parts.Transition{Width: connector} ||
			(p.Category == parts.Body{} && p.Connector == connector)
	}
}

// EngineFor matches engines attaching under a connector-wide joint, no
// taller than maxHeight.
func EngineFor(connector, maxHeight int) parts.Predicate {
	return func(p *parts.Part) bool {
		return p.Category == parts.Engine{Width: connector} && p.Height <= maxHeight
	}
}

// Decoration matches tips, and exhausts attaching under a connector-wide
// joint, no taller than maxHeight.
func Decoration(connector, maxHeight int) parts.Predicate {
	return func(p *parts.Part) bool {
		if p.Height > maxHeight {
			return false
		}
		return p.Category == parts.Tip{} || p.Category == parts.Exhaust{Width: connector}
	}
}

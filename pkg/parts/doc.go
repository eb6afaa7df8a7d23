// Package parts defines the ASCII-art building blocks of a rocket and the
// immutable catalog they are drawn from.
//
// # Parts
//
// A [Part] is one fragment of the picture: one or more rows of text, a
// selection weight, and the structural data needed to decide what may be
// stacked under it. Every part has a [Category]:
//
//   - [Tip]: a nose ornament placed above the nose cone
//   - [Body]: a straight section; its connector is the same at both edges
//   - [Transition]: changes the joint width, from Width at the top to the
//     part's Connector at the bottom. Transition{Width: 0} is a nose cone.
//   - [Engine]: attaches under a Width-wide section
//   - [Exhaust]: trails under a Width-wide engine or exhaust
//
// The category value carries the width it requires, so compatibility checks
// never need a side channel:
//
//	p.Category == parts.Transition{Width: 3}
//
// # Catalog
//
// A [Catalog] is built once (see [Default], [New] and [Load]) and never
// modified afterwards. It is safe for concurrent readers.
//
//	wide := parts.Default().Query(func(p *parts.Part) bool {
//	    return p.Category == parts.Body{} && p.Connector == 3
//	})
//
// # Inspection
//
// [ToDOT] describes which parts may sit directly on top of which others as a
// Graphviz graph, and [RenderSVG] lays that graph out in-process.
package parts

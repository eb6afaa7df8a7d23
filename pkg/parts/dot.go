package parts

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the catalog to Graphviz DOT format. Each part becomes a
// node labeled with its ID and shape, and an edge a -> b means b may sit
// directly beneath a (see [CanStack]). Nodes are ranked by kind so the graph
// reads top to bottom like a rocket.
func ToDOT(c *Catalog) string {
	var buf bytes.Buffer
	buf.WriteString("digraph parts {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	all := c.Parts()
	for _, p := range all {
		label := fmt.Sprintf("%s\n%s\n%s", p.ID, p.Category, p.Shape)
		fmt.Fprintf(&buf, "  %q [label=%q, group=%q];\n", p.ID, label, p.Category.Kind().String())
	}

	buf.WriteString("\n")
	for _, upper := range all {
		for _, lower := range all {
			if CanStack(upper, lower) {
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", upper.ID, lower.ID, upper.Connector)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

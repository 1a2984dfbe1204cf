// Package treemap renders the universe content tree as a node-link diagram
// via Graphviz: a quick structural view for editors, complementing the
// spatial starmap.
package treemap

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/horizonlabs/horizon/pkg/universe"
)

// ToDOT converts a universe tree to Graphviz DOT. The output is stable for
// identical trees, so it is safe to cache and diff.
func ToDOT(u *universe.Universe) string {
	var buf bytes.Buffer
	buf.WriteString("digraph universe {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	buf.WriteString("  \"universe\" [label=\"Universe\", fillcolor=lightgoldenrod];\n")

	for _, g := range u.Galaxies {
		writeNode(&buf, g.ID, g.Name, "lightsteelblue")
		writeEdge(&buf, "universe", g.ID)

		for _, star := range g.Stars {
			writeNode(&buf, star.ID, "☆ "+star.Name, "white")
			writeEdge(&buf, g.ID, star.ID)
		}

		for _, sys := range g.SolarSystems {
			writeNode(&buf, sys.ID, sys.Name, "lightyellow")
			writeEdge(&buf, g.ID, sys.ID)

			for _, p := range sys.Planets {
				writeNode(&buf, p.ID, p.Name, "white")
				writeEdge(&buf, sys.ID, p.ID)

				for _, m := range p.Moons {
					writeNode(&buf, m.ID, m.Name, "whitesmoke")
					writeEdge(&buf, p.ID, m.ID)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, id, label, fill string) {
	fmt.Fprintf(buf, "  %q [label=%q, fillcolor=%s];\n", id, label, fill)
}

func writeEdge(buf *bytes.Buffer, from, to string) {
	fmt.Fprintf(buf, "  %q -> %q;\n", from, to)
}

// RenderSVG renders a DOT string to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT string to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

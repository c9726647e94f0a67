package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/peircelab/peirce/pkg/graph"
)

// Options configures diagram rendering.
type Options struct {
	// Shaded fills areas at odd nesting depth with grey, the conventional
	// way of marking negative context in existential graph diagrams.
	Shaded bool
}

// ToDOT converts a graph to Graphviz DOT source. Every cut becomes a cluster
// nested inside its parent's cluster, and every atom becomes a plain-text
// node. The resulting DOT can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph EG {\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontsize=24, margin=\"0.1,0.05\"];\n")
	buf.WriteString("\n")

	writeLevel(&buf, g, "r", 1, 0, opts)

	buf.WriteString("}\n")
	return buf.String()
}

// writeLevel emits the atoms and child clusters of one node. The id string
// encodes the node's address so generated names stay unique across the tree.
func writeLevel(buf *bytes.Buffer, g *graph.Graph, id string, indent, level int, opts Options) {
	pad := strings.Repeat("  ", indent)

	for i, atom := range g.Atoms {
		fmt.Fprintf(buf, "%s%q [label=%q];\n", pad, fmt.Sprintf("%s_a%d", id, i), atom)
	}

	// Graphviz drops empty clusters, so an empty cut needs an invisible
	// anchor node to keep its enclosure visible.
	if g.Size() == 0 && level > 0 {
		fmt.Fprintf(buf, "%s%q [label=\"\", style=invis, width=0.3, height=0.3];\n", pad, id+"_empty")
	}

	for i, child := range g.Children {
		childID := fmt.Sprintf("%s_c%d", id, i)
		fmt.Fprintf(buf, "%ssubgraph %q {\n", pad, "cluster_"+childID)
		if opts.Shaded && (level+1)%2 == 1 {
			fmt.Fprintf(buf, "%s  style=\"rounded,filled\";\n%s  fillcolor=\"grey92\";\n", pad, pad)
		} else {
			fmt.Fprintf(buf, "%s  style=\"rounded\";\n", pad)
		}
		writeLevel(buf, child, childID, indent+1, level+1, opts)
		fmt.Fprintf(buf, "%s}\n", pad)
	}
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
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
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at the
// origin, which keeps downstream embedding simple.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

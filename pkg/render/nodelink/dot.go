package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/metronav/metronav/pkg/network"
	"github.com/metronav/metronav/pkg/route"
)

// Options configures node-link diagram rendering.
type Options struct {
	// ClusterLines draws the states of each line inside a labeled box.
	ClusterLines bool

	// Route, when non-empty, is highlighted: its states are filled and the
	// hops between them drawn bold.
	Route route.Route
}

const (
	routeFill = "#ffd75f"
	routeEdge = "#d75f00"
)

// ToDOT converts a state graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Ride and transfer edges are symmetric, so each connected pair is drawn once
// as an undirected edge. Transfer edges are dashed.
func ToDOT(g *network.Graph, opts Options) string {
	onRoute := make(map[network.State]bool, len(opts.Route))
	routeHops := make(map[[2]network.State]bool, len(opts.Route))
	for i, s := range opts.Route {
		onRoute[s] = true
		if i > 0 {
			routeHops[[2]network.State{opts.Route[i-1], s}] = true
			routeHops[[2]network.State{s, opts.Route[i-1]}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if opts.ClusterLines {
		writeClusters(&buf, g, onRoute)
	} else {
		for _, s := range g.States() {
			fmt.Fprintf(&buf, "  %q [%s];\n", s.String(), nodeAttrs(s, onRoute[s]))
		}
	}

	buf.WriteString("\n")
	drawn := make(map[[2]network.State]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To || drawn[[2]network.State{e.To, e.From}] {
			continue
		}
		drawn[[2]network.State{e.From, e.To}] = true
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", e.From.String(), e.To.String(), edgeAttrs(e, routeHops[[2]network.State{e.From, e.To}]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeClusters(buf *bytes.Buffer, g *network.Graph, onRoute map[network.State]bool) {
	var order []string
	byLine := make(map[string][]network.State)
	for _, s := range g.States() {
		if _, ok := byLine[s.Line]; !ok {
			order = append(order, s.Line)
		}
		byLine[s.Line] = append(byLine[s.Line], s)
	}
	for i, line := range order {
		fmt.Fprintf(buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(buf, "    label=%q;\n", line)
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for _, s := range byLine[line] {
			fmt.Fprintf(buf, "    %q [%s];\n", s.String(), nodeAttrs(s, onRoute[s]))
		}
		buf.WriteString("  }\n")
	}
}

func nodeAttrs(s network.State, highlighted bool) string {
	attrs := fmt.Sprintf("label=%q", s.Station+"\n"+s.Line)
	if highlighted {
		attrs += fmt.Sprintf(", fillcolor=%q, penwidth=2", routeFill)
	}
	return attrs
}

func edgeAttrs(e network.Edge, highlighted bool) string {
	var attrs []string
	if e.IsTransfer() {
		attrs = append(attrs, "style=dashed")
	}
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("color=%q", routeEdge), "penwidth=3")
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

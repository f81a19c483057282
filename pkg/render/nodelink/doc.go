// Package nodelink renders state graphs as node-link diagrams.
//
// # Overview
//
// Every (station, line) state becomes a box labeled with its station and
// line. Ride edges are solid, transfer edges dashed. A route can be overlaid
// so the searched path stands out against the full network.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{ClusterLines: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Highlight a route found on the same network:
//
//	res := route.FindRoute("A", "Y", n, g)
//	dot := nodelink.ToDOT(g, nodelink.Options{Route: res.Route})
//
// # Options
//
//   - ClusterLines: group each line's states in a labeled subgraph
//   - Route: states and hops to highlight
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package nodelink

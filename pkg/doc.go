// Package pkg provides the core libraries for metronav route finding.
//
// # Overview
//
// Metronav answers "how do I get from A to B" on a metro network given as
// ordered station lists, one per line. The pkg directory is organized into:
//
//  1. [network] - Lines, the station index, and the (station, line) state graph
//  2. [route] - Breadth-first route search and route narration
//  3. [lines] - Loading line definitions from directories or network files
//  4. [io] - JSON import and export of networks, routes and graphs
//  5. [render/nodelink] - Graphviz diagrams of the state graph
//
// # Architecture
//
// The data flow through metronav:
//
//	lines/*.txt or network.{yaml,toml,json}
//	         ↓
//	    [lines] package (load + validate)
//	         ↓
//	    [network] package (station index + state graph)
//	         ↓
//	    [route] package (fewest-hop search)
//	         ↓
//	    narration, JSON, or DOT/SVG output
//
// # Quick Start
//
//	n, err := lines.Load("./lines", lines.Options{})
//	if err != nil {
//	    return err
//	}
//	res := route.NewPlanner(n).Find("Espanya", "Diagonal")
//	if res.Found() {
//	    fmt.Println(res.Route)
//	}
//
// [network]: github.com/metronav/metronav/pkg/network
// [route]: github.com/metronav/metronav/pkg/route
// [lines]: github.com/metronav/metronav/pkg/lines
// [io]: github.com/metronav/metronav/pkg/io
// [render/nodelink]: github.com/metronav/metronav/pkg/render/nodelink
package pkg

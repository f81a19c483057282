// Package network models a multi-line transit network as a graph of
// (station, line) states.
//
// # Overview
//
// A [Network] is an ordered set of [Line] values, each an ordered list of
// station names. Riding a line and changing lines are both moves in the same
// graph once every station is split into one [State] per line serving it:
//
//	Red:  A - B - C
//	Blue: X - B - Y
//
//	(A,Red) <-> (B,Red) <-> (C,Red)
//	               ^
//	               | transfer
//	               v
//	(X,Blue) <-> (B,Blue) <-> (Y,Blue)
//
// [BuildStationIndex] records which lines serve each station, and
// [BuildGraph] produces the [Graph] with ride edges along every line and a
// transfer clique at every station shared by two or more lines. Every edge is
// one hop, so a breadth-first search over the graph finds minimum-hop routes
// that count transfers.
//
// # Basic Usage
//
//	n := network.New(
//	    network.Line{ID: "Red", Stations: []string{"A", "B", "C"}},
//	    network.Line{ID: "Blue", Stations: []string{"X", "B", "Y"}},
//	)
//	g := network.BuildGraph(n)
//	g.Successors(network.State{Station: "B", Line: "Red"})
//	// [A@Red C@Red B@Blue]
//
// # Ordering
//
// Line order, station first-seen order and successor order are all stable and
// derive from the order lines were added. Route search relies on this to
// return the same route for the same inputs.
//
// # Malformed Input
//
// Lines are not validated here. A station listed twice on one line collapses
// into one state carrying the edges of both stops; rejecting such lines is
// the loader's job (see package lines).
//
// # Concurrency
//
// Networks, indexes and graphs are not mutated after construction and are
// safe for concurrent reads.
package network

package network

import (
	"fmt"
	"slices"
	"strings"
)

// State is a node of the search graph: a station as seen from one line.
// The same station on two lines is two distinct states, which is what makes a
// transfer an explicit hop. States are comparable values used as map keys.
type State struct {
	Station string
	Line    string
}

// String formats the state as "station@line".
func (s State) String() string { return s.Station + "@" + s.Line }

// Edge is a directed, one-hop connection between two states.
type Edge struct {
	From State
	To   State
}

// IsTransfer reports whether the edge changes line at the same station.
func (e Edge) IsTransfer() bool {
	return e.From.Station == e.To.Station && e.From.Line != e.To.Line
}

// Graph is the directed state graph of a network.
//
// Successor lists keep edge-discovery order: all ride edges of a state (previous
// station first, then next) come before its transfer edges. Route search walks
// successors in that order, so it decides tie-breaking among equal-length routes.
//
// A Graph is immutable after BuildGraph returns and safe for concurrent reads.
type Graph struct {
	adj    map[State][]State
	states []State // discovery order
	edges  int
}

func newGraph() *Graph {
	return &Graph{adj: make(map[State][]State)}
}

func (g *Graph) touch(s State) {
	if _, ok := g.adj[s]; !ok {
		g.adj[s] = nil
		g.states = append(g.states, s)
	}
}

func (g *Graph) addEdge(from, to State) {
	g.touch(from)
	g.touch(to)
	g.adj[from] = append(g.adj[from], to)
	g.edges++
}

// BuildGraph constructs the state graph of n in two passes.
//
// The first pass links consecutive stations of every line in both directions.
// The second pass links, at every station served by k > 1 lines, each of the
// k states to the other k-1, forming a transfer clique. Every edge costs one hop.
//
// Stations repeated on one line are not deduplicated: both occurrences collapse
// into a single state that receives the edges of each, and adjacent repeats
// produce a self edge.
func BuildGraph(n *Network) *Graph {
	return BuildGraphWithIndex(n, BuildStationIndex(n))
}

// BuildGraphWithIndex is BuildGraph with a precomputed station index of n.
func BuildGraphWithIndex(n *Network, idx *StationIndex) *Graph {
	g := newGraph()

	for _, l := range n.Lines() {
		last := len(l.Stations) - 1
		for i, s := range l.Stations {
			cur := State{Station: s, Line: l.ID}
			g.touch(cur)
			if i > 0 {
				g.addEdge(cur, State{Station: l.Stations[i-1], Line: l.ID})
			}
			if i < last {
				g.addEdge(cur, State{Station: l.Stations[i+1], Line: l.ID})
			}
		}
	}

	for _, s := range idx.Stations() {
		lines := idx.Lines(s)
		if len(lines) < 2 {
			continue
		}
		for _, from := range lines {
			for _, to := range lines {
				if from != to {
					g.addEdge(State{Station: s, Line: from}, State{Station: s, Line: to})
				}
			}
		}
	}

	return g
}

// Successors returns the states one hop from s, in edge order. The returned
// slice must not be modified.
func (g *Graph) Successors(s State) []State {
	return g.adj[s]
}

// Has reports whether s is a node of the graph.
func (g *Graph) Has(s State) bool {
	_, ok := g.adj[s]
	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to State) bool {
	return slices.Contains(g.adj[from], to)
}

// States returns every node in discovery order.
func (g *Graph) States() []State { return g.states }

// StateCount returns the number of nodes.
func (g *Graph) StateCount() int { return len(g.states) }

// EdgeCount returns the number of directed edges, counting duplicates.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every edge, grouped by source state in discovery order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, from := range g.states {
		for _, to := range g.adj[from] {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// String renders the adjacency lists, one state per line. Intended for debugging.
func (g *Graph) String() string {
	var b strings.Builder
	for _, s := range g.states {
		fmt.Fprintf(&b, "%s ->", s)
		for _, t := range g.adj[s] {
			fmt.Fprintf(&b, " %s", t)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package route

import (
	"github.com/metronav/metronav/pkg/network"
)

// Status classifies the outcome of a route search.
type Status int

const (
	// Found means a route was returned.
	Found Status = iota
	// NoSuchStation means the start or end station is served by no line.
	NoSuchStation
	// NoRouteFound means both stations exist but no path connects them.
	NoRouteFound
)

// String returns a short status name.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoSuchStation:
		return "no such station"
	case NoRouteFound:
		return "no route found"
	}
	return "unknown"
}

// Result is the outcome of FindRoute. Route is nil unless Status is Found.
type Result struct {
	Status Status
	Route  Route
}

// Found reports whether a route was found.
func (r Result) Found() bool { return r.Status == Found }

// FindRoute returns a minimum-hop route from start to end.
//
// The search is a multi-source breadth-first search over g. It is seeded with
// (start, L) for every line L of n serving start, in network line order, and
// expands successors in graph edge order, marking states visited when they are
// enqueued. The first dequeued state whose station is end terminates the
// search, so the route has the fewest hops, transfers counted, and ties go to
// the earliest seed and edge. Identical inputs always give the same route.
//
// When start equals end the route is the single state (start, L) for the
// first line serving it. Unknown stations report NoSuchStation and
// disconnected stations NoRouteFound; neither is an error.
//
// FindRoute only reads n and g and keeps all search state local, so
// concurrent calls over a shared network and graph are safe.
func FindRoute(start, end string, n *network.Network, g *network.Graph) Result {
	var seeds []network.State
	endServed := false
	for _, l := range n.Lines() {
		if l.Contains(start) {
			seeds = append(seeds, network.State{Station: start, Line: l.ID})
		}
		endServed = endServed || l.Contains(end)
	}
	if len(seeds) == 0 || !endServed {
		return Result{Status: NoSuchStation}
	}

	parent := make(map[network.State]network.State)
	visited := make(map[network.State]bool, len(seeds))
	queue := make([]network.State, 0, len(seeds))
	for _, s := range seeds {
		visited[s] = true
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.Station == end {
			return Result{Status: Found, Route: backtrack(cur, parent)}
		}
		for _, next := range g.Successors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return Result{Status: NoRouteFound}
}

// backtrack rebuilds the path ending at s by following parent links back to
// a seed, the only visited states without a parent.
func backtrack(s network.State, parent map[network.State]network.State) Route {
	var rev Route
	for {
		rev = append(rev, s)
		p, ok := parent[s]
		if !ok {
			break
		}
		s = p
	}
	out := make(Route, len(rev))
	for i, st := range rev {
		out[len(rev)-1-i] = st
	}
	return out
}

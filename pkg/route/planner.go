package route

import "github.com/metronav/metronav/pkg/network"

// Planner bundles a network with its derived station index and state graph so
// repeated queries reuse one build. A Planner is read-only after NewPlanner
// and safe for concurrent use.
type Planner struct {
	Network *network.Network
	Index   *network.StationIndex
	Graph   *network.Graph
}

// NewPlanner builds the station index and state graph of n.
func NewPlanner(n *network.Network) *Planner {
	idx := network.BuildStationIndex(n)
	return &Planner{
		Network: n,
		Index:   idx,
		Graph:   network.BuildGraphWithIndex(n, idx),
	}
}

// Find runs FindRoute over the planner's network and graph.
func (p *Planner) Find(start, end string) Result {
	return FindRoute(start, end, p.Network, p.Graph)
}

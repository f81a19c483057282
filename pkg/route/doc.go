// Package route finds minimum-hop routes through a transit network.
//
// Routes are searched over the (station, line) state graph built by package
// network. Riding to an adjacent station and transferring between lines at a
// shared station each cost one hop, so the shortest route in hops also
// accounts for the number of line changes.
//
// # Searching
//
//	n := network.New(
//	    network.Line{ID: "Red", Stations: []string{"A", "B", "C"}},
//	    network.Line{ID: "Blue", Stations: []string{"X", "B", "Y"}},
//	)
//	res := route.FindRoute("A", "Y", n, network.BuildGraph(n))
//	if res.Found() {
//	    fmt.Println(res.Route) // A@Red -> B@Red -> B@Blue -> Y@Blue
//	}
//
// A [Planner] keeps the graph around for repeated queries against the same
// network.
//
// # Outcomes
//
// [FindRoute] never fails. Its [Result] carries a [Status]:
//
//   - [Found]: Route holds at least one state
//   - [NoSuchStation]: the start or end station is on no line
//   - [NoRouteFound]: both stations exist in disconnected parts of the network
//
// # Narration
//
// [Route.Legs] and [Route.Steps] turn a route into rider-facing structure
// (board, ride, transfer, arrive) without committing to any output format.
package route

package route_test

import (
	"fmt"

	"github.com/metronav/metronav/pkg/network"
	"github.com/metronav/metronav/pkg/route"
)

func ExampleFindRoute() {
	n := network.New(
		network.Line{ID: "Red", Stations: []string{"A", "B", "C"}},
		network.Line{ID: "Blue", Stations: []string{"X", "B", "Y"}},
	)
	res := route.FindRoute("A", "Y", n, network.BuildGraph(n))

	fmt.Println(res.Route)
	fmt.Println("hops:", res.Route.Hops(), "transfers:", res.Route.Transfers())
	// Output:
	// A@Red -> B@Red -> B@Blue -> Y@Blue
	// hops: 3 transfers: 1
}

func ExampleFindRoute_disconnected() {
	n := network.New(
		network.Line{ID: "North", Stations: []string{"N1", "N2"}},
		network.Line{ID: "South", Stations: []string{"S1", "S2"}},
	)
	res := route.FindRoute("N1", "S1", n, network.BuildGraph(n))

	fmt.Println(res.Found(), res.Status)
	// Output: false no route found
}

func ExampleRoute_Steps() {
	p := route.NewPlanner(network.New(
		network.Line{ID: "L1", Stations: []string{"Espanya", "Catalunya", "Urquinaona"}},
		network.Line{ID: "L4", Stations: []string{"Urquinaona", "Jaume I"}},
	))
	for _, s := range p.Find("Espanya", "Jaume I").Route.Steps() {
		fmt.Println(s.Kind, s.Station, s.Line)
	}
	// Output:
	// board Espanya L1
	// ride Catalunya L1
	// ride Urquinaona L1
	// transfer Urquinaona L4
	// ride Jaume I L4
	// arrive Jaume I L4
}

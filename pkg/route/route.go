package route

import (
	"strings"

	"github.com/metronav/metronav/pkg/network"
)

// Route is an ordered sequence of states from a start station to a target
// station. A found route always has at least one state.
type Route []network.State

// Start returns the first state. It panics on an empty route.
func (r Route) Start() network.State { return r[0] }

// End returns the last state. It panics on an empty route.
func (r Route) End() network.State { return r[len(r)-1] }

// Hops returns the number of edges traversed, transfers included.
func (r Route) Hops() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

// Transfers returns how many hops change line.
func (r Route) Transfers() int {
	n := 0
	for i := 1; i < len(r); i++ {
		if r[i].Line != r[i-1].Line {
			n++
		}
	}
	return n
}

// Rides returns how many hops move between stations.
func (r Route) Rides() int { return r.Hops() - r.Transfers() }

// Lines returns the lines used, in riding order.
func (r Route) Lines() []string {
	var out []string
	for i, s := range r {
		if i == 0 || s.Line != r[i-1].Line {
			out = append(out, s.Line)
		}
	}
	return out
}

// String formats the route as "A@Red -> B@Red -> B@Blue".
func (r Route) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}

// Leg is a stretch of a route spent on one line.
type Leg struct {
	Line     string
	Stations []string // boarding station first, alighting station last
}

// Legs splits the route into consecutive runs on a single line.
// A transfer ends one leg and starts the next at the same station.
func (r Route) Legs() []Leg {
	var legs []Leg
	for i, s := range r {
		if i == 0 || s.Line != r[i-1].Line {
			legs = append(legs, Leg{Line: s.Line})
		}
		cur := &legs[len(legs)-1]
		cur.Stations = append(cur.Stations, s.Station)
	}
	return legs
}

// StepKind classifies one narration step.
type StepKind int

const (
	// StepBoard starts the journey on a line at the first station.
	StepBoard StepKind = iota
	// StepRide moves to the next station on the current line.
	StepRide
	// StepTransfer changes line at the current station.
	StepTransfer
	// StepArrive ends the journey.
	StepArrive
)

// String returns the lowercase step name.
func (k StepKind) String() string {
	switch k {
	case StepBoard:
		return "board"
	case StepRide:
		return "ride"
	case StepTransfer:
		return "transfer"
	case StepArrive:
		return "arrive"
	}
	return "unknown"
}

// Step is one narration event of a route.
type Step struct {
	Kind    StepKind
	Station string
	Line    string
}

// Steps narrates the route: board on the first line, one ride or transfer per
// hop, then arrive at the last station. An empty route yields no steps.
func (r Route) Steps() []Step {
	if len(r) == 0 {
		return nil
	}
	steps := make([]Step, 0, len(r)+1)
	steps = append(steps, Step{Kind: StepBoard, Station: r[0].Station, Line: r[0].Line})
	for i := 1; i < len(r); i++ {
		kind := StepRide
		if r[i].Line != r[i-1].Line {
			kind = StepTransfer
		}
		steps = append(steps, Step{Kind: kind, Station: r[i].Station, Line: r[i].Line})
	}
	end := r.End()
	return append(steps, Step{Kind: StepArrive, Station: end.Station, Line: end.Line})
}

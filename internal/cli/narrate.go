package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/metronav/metronav/pkg/errors"
	"github.com/metronav/metronav/pkg/network"
	"github.com/metronav/metronav/pkg/route"
)

// narrate renders a found route as riding instructions:
//
//	Start on L1 at Espanya
//	  → Catalunya
//	⇄ Transfer at Catalunya to L3
//	  → Passeig de Gràcia
//	Arrived at Passeig de Gràcia 🎉
func narrate(r route.Route) string {
	var b strings.Builder
	for _, step := range r.Steps() {
		switch step.Kind {
		case route.StepBoard:
			fmt.Fprintf(&b, "Start on %s at %s\n", StyleLine.Render(step.Line), StyleValue.Render(step.Station))
		case route.StepRide:
			fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render(iconArrow), step.Station)
		case route.StepTransfer:
			fmt.Fprintf(&b, "%s Transfer at %s to %s\n", StyleTransfer.Render(iconTransfer), step.Station, StyleLine.Render(step.Line))
		case route.StepArrive:
			fmt.Fprintf(&b, "%s %s\n", StyleSuccess.Render("Arrived at "+step.Station), iconArrived)
		}
	}
	return b.String()
}

// summarize renders the hop counts of a route on one line.
func summarize(r route.Route) string {
	return StyleDim.Render(fmt.Sprintf("%s · %s · %s",
		plural(r.Hops(), "hop"),
		plural(r.Rides(), "stop"),
		plural(r.Transfers(), "transfer")))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// resultError converts an unsuccessful search into a coded error that names
// the missing station when there is one.
func resultError(res route.Result, idx *network.StationIndex, start, end string) error {
	switch res.Status {
	case route.Found:
		return nil
	case route.NoSuchStation:
		for _, s := range []string{start, end} {
			if !idx.Has(s) {
				return stationNotFound(idx, s)
			}
		}
		return errors.New(errors.ErrCodeStationNotFound, "station not found")
	default:
		return errors.New(errors.ErrCodeNoRoute, "no route from %q to %q", start, end)
	}
}

// stationNotFound reports an unknown station, suggesting close names.
func stationNotFound(idx *network.StationIndex, name string) error {
	if hints := suggestStations(idx, name, 3); len(hints) > 0 {
		return errors.New(errors.ErrCodeStationNotFound, "unknown station %q (did you mean %s?)", name, quoteJoin(hints))
	}
	return errors.New(errors.ErrCodeStationNotFound, "unknown station %q", name)
}

// suggestStations returns up to limit station names that match name ignoring
// case, then names that contain it, in index order.
func suggestStations(idx *network.StationIndex, name string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var exact, partial []string
	for _, s := range idx.Stations() {
		lower := strings.ToLower(s)
		switch {
		case lower == needle:
			exact = append(exact, s)
		case strings.Contains(lower, needle):
			partial = append(partial, s)
		}
	}
	out := slices.Concat(exact, partial)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, " or ")
}

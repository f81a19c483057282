package network

import "slices"

// StationIndex maps each station name to the set of lines serving it.
//
// Stations are kept in first-seen order (network line order, then position on
// the line) and each station's lines in network order, so every traversal of
// the index is deterministic. Stations served by no line never appear.
type StationIndex struct {
	stations []string
	lines    map[string][]string
}

// BuildStationIndex derives the station index of n. It is a pure function of
// the network; rebuild it whenever the network changes.
//
// A station listed more than once on the same line is recorded once for that
// line: line membership is a set.
func BuildStationIndex(n *Network) *StationIndex {
	idx := &StationIndex{lines: make(map[string][]string)}
	for _, l := range n.Lines() {
		for _, s := range l.Stations {
			ls, seen := idx.lines[s]
			if !seen {
				idx.stations = append(idx.stations, s)
			}
			if !slices.Contains(ls, l.ID) {
				idx.lines[s] = append(ls, l.ID)
			}
		}
	}
	return idx
}

// Lines returns the IDs of the lines serving station, or nil for an unknown
// station. The returned slice must not be modified.
func (x *StationIndex) Lines(station string) []string {
	return x.lines[station]
}

// Has reports whether any line serves station.
func (x *StationIndex) Has(station string) bool {
	_, ok := x.lines[station]
	return ok
}

// Stations returns every indexed station in first-seen order.
func (x *StationIndex) Stations() []string {
	return x.stations
}

// Len returns the number of indexed stations.
func (x *StationIndex) Len() int { return len(x.stations) }

// IsTransfer reports whether station is served by two or more lines.
func (x *StationIndex) IsTransfer(station string) bool {
	return len(x.lines[station]) > 1
}

// TransferStations returns the stations served by two or more lines, in
// first-seen order.
func (x *StationIndex) TransferStations() []string {
	var out []string
	for _, s := range x.stations {
		if x.IsTransfer(s) {
			out = append(out, s)
		}
	}
	return out
}

// Map returns a copy of the index as a plain station to line IDs mapping.
func (x *StationIndex) Map() map[string][]string {
	m := make(map[string][]string, len(x.lines))
	for s, ls := range x.lines {
		m[s] = slices.Clone(ls)
	}
	return m
}

package network

import "slices"

// Line is a named, ordered sequence of stations forming one transit route.
// Stations are listed from one terminus to the other.
type Line struct {
	ID       string   // Unique line identifier (e.g. "M1", "Red")
	Stations []string // Ordered station names, non-empty for well-formed input
}

// Len returns the number of stations on the line.
func (l Line) Len() int { return len(l.Stations) }

// Contains reports whether station appears anywhere on the line.
func (l Line) Contains(station string) bool {
	return slices.Contains(l.Stations, station)
}

// Network is an ordered collection of lines keyed by ID.
//
// Lines keep insertion order. That order is observable: it decides which
// starting line a route search tries first, and therefore which of several
// equally short routes is returned. Loaders insert lines sorted by ID.
//
// The zero value is an empty, usable network. A Network is never mutated by
// graph construction or route search.
type Network struct {
	lines []Line
	index map[string]int // line ID -> position in lines
}

// New builds a network from lines in the given order. A later line with a
// duplicate ID replaces the earlier one in place.
func New(lines ...Line) *Network {
	n := &Network{}
	for _, l := range lines {
		n.Add(l)
	}
	return n
}

// FromMap builds a network from a plain line-ID to stations mapping.
// Lines are ordered by ID so the result is deterministic.
func FromMap(m map[string][]string) *Network {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	n := &Network{}
	for _, id := range ids {
		n.Add(Line{ID: id, Stations: m[id]})
	}
	return n
}

// Add appends a line, or replaces the line with the same ID keeping its
// original position. The station slice is copied.
func (n *Network) Add(l Line) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	l.Stations = slices.Clone(l.Stations)
	if i, ok := n.index[l.ID]; ok {
		n.lines[i] = l
		return
	}
	n.index[l.ID] = len(n.lines)
	n.lines = append(n.lines, l)
}

// Lines returns the lines in network order. The returned slice must not be modified.
func (n *Network) Lines() []Line {
	if n == nil {
		return nil
	}
	return n.lines
}

// IDs returns the line IDs in network order.
func (n *Network) IDs() []string {
	ids := make([]string, len(n.Lines()))
	for i, l := range n.Lines() {
		ids[i] = l.ID
	}
	return ids
}

// Len returns the number of lines.
func (n *Network) Len() int { return len(n.Lines()) }

// Line looks up a line by ID. The boolean is false when no such line exists.
func (n *Network) Line(id string) (Line, bool) {
	if n == nil {
		return Line{}, false
	}
	i, ok := n.index[id]
	if !ok {
		return Line{}, false
	}
	return n.lines[i], true
}

// LinesAt returns the IDs of every line containing station, in network order.
func (n *Network) LinesAt(station string) []string {
	var ids []string
	for _, l := range n.Lines() {
		if l.Contains(station) {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// Neighbors returns the stations before and after station on the given line.
// Either result is empty at a terminus; both are empty when the line does not
// exist or does not serve the station. Only the first occurrence is considered.
func (n *Network) Neighbors(station, line string) (prev, next string) {
	l, ok := n.Line(line)
	if !ok {
		return "", ""
	}
	i := slices.Index(l.Stations, station)
	if i < 0 {
		return "", ""
	}
	if i > 0 {
		prev = l.Stations[i-1]
	}
	if i < len(l.Stations)-1 {
		next = l.Stations[i+1]
	}
	return prev, next
}

// StationCount returns the number of distinct station names across all lines.
func (n *Network) StationCount() int {
	seen := make(map[string]struct{})
	for _, l := range n.Lines() {
		for _, s := range l.Stations {
			seen[s] = struct{}{}
		}
	}
	return len(seen)
}

// ToMap returns a copy of the network as a plain line-ID to stations mapping.
func (n *Network) ToMap() map[string][]string {
	m := make(map[string][]string, n.Len())
	for _, l := range n.Lines() {
		m[l.ID] = slices.Clone(l.Stations)
	}
	return m
}

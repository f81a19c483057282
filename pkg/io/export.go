package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/metronav/metronav/pkg/network"
	"github.com/metronav/metronav/pkg/route"
)

type networkDoc struct {
	Lines []lineDoc `json:"lines"`
}

type lineDoc struct {
	ID       string   `json:"id"`
	Stations []string `json:"stations"`
}

type stateDoc struct {
	Station string `json:"station"`
	Line    string `json:"line"`
}

type legDoc struct {
	Line     string   `json:"line"`
	Stations []string `json:"stations"`
}

type routeDoc struct {
	Status    string     `json:"status"`
	Hops      *int       `json:"hops,omitempty"`
	Transfers *int       `json:"transfers,omitempty"`
	States    []stateDoc `json:"states,omitempty"`
	Legs      []legDoc   `json:"legs,omitempty"`
}

type graphDoc struct {
	Nodes []nodeDoc `json:"nodes"`
	Edges []edgeDoc `json:"edges"`
}

type nodeDoc struct {
	ID      string `json:"id"`
	Station string `json:"station"`
	Line    string `json:"line"`
}

type edgeDoc struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Transfer bool   `json:"transfer,omitempty"`
}

// WriteNetworkJSON encodes a network as JSON and writes it to w.
// Lines are written in network order. The output can be re-imported with
// [ReadNetworkJSON].
func WriteNetworkJSON(n *network.Network, w io.Writer) error {
	out := networkDoc{Lines: make([]lineDoc, 0, n.Len())}
	for _, l := range n.Lines() {
		out.Lines = append(out.Lines, lineDoc{ID: l.ID, Stations: l.Stations})
	}
	return encode(w, out)
}

// ExportNetworkJSON writes a network to a JSON file at path.
// This is a convenience wrapper around [WriteNetworkJSON] for file-based output.
func ExportNetworkJSON(n *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteNetworkJSON(n, f)
}

// WriteRouteJSON encodes a route search result as JSON and writes it to w.
func WriteRouteJSON(res route.Result, w io.Writer) error {
	out := routeDoc{Status: res.Status.String()}
	if res.Found() {
		hops, transfers := res.Route.Hops(), res.Route.Transfers()
		out.Hops = &hops
		out.Transfers = &transfers
		for _, s := range res.Route {
			out.States = append(out.States, stateDoc{Station: s.Station, Line: s.Line})
		}
		for _, l := range res.Route.Legs() {
			out.Legs = append(out.Legs, legDoc{Line: l.Line, Stations: l.Stations})
		}
	}
	return encode(w, out)
}

// WriteGraphJSON encodes a state graph in node-link form and writes it to w.
// Nodes and edges follow graph discovery order.
func WriteGraphJSON(g *network.Graph, w io.Writer) error {
	out := graphDoc{
		Nodes: make([]nodeDoc, 0, g.StateCount()),
		Edges: make([]edgeDoc, 0, g.EdgeCount()),
	}
	for _, s := range g.States() {
		out.Nodes = append(out.Nodes, nodeDoc{ID: s.String(), Station: s.Station, Line: s.Line})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeDoc{From: e.From.String(), To: e.To.String(), Transfer: e.IsTransfer()})
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

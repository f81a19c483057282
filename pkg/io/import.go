package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/metronav/metronav/pkg/network"
)

// ReadNetworkJSON decodes a JSON network from r.
//
// The input must be an object with a "lines" array whose entries carry an
// "id" string and a "stations" array of strings:
//
//	{"lines": [{"id": "Red", "stations": ["A", "B", "C"]}]}
//
// Lines keep array order. A repeated line ID replaces the earlier entry at its
// original position, matching [network.Network.Add].
//
// ReadNetworkJSON returns an error if the JSON is malformed, the "lines" key
// is missing, or a line has no "id". It does not close r.
func ReadNetworkJSON(r io.Reader) (*network.Network, error) {
	var data struct {
		Lines *[]lineDoc `json:"lines"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Lines == nil {
		return nil, fmt.Errorf("decode: missing \"lines\" array")
	}

	n := network.New()
	for i, l := range *data.Lines {
		if l.ID == "" {
			return nil, fmt.Errorf("line %d: missing id", i)
		}
		n.Add(network.Line{ID: l.ID, Stations: l.Stations})
	}
	return n, nil
}

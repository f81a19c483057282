// Package io provides JSON import and export for networks, routes and state
// graphs.
//
// # Network Format
//
// A network is an object with one ordered array of lines. Array order is the
// network line order:
//
//	{
//	  "lines": [
//	    {"id": "Red", "stations": ["A", "B", "C"]},
//	    {"id": "Blue", "stations": ["X", "B", "Y"]}
//	  ]
//	}
//
// Use [ReadNetworkJSON] to read a network from any io.Reader. Only the JSON structure is
// checked here: empty lines, blank names and repeated stations pass through
// unchanged so that package lines can normalize and validate every format the
// same way.
//
// Use [ExportNetworkJSON] or [WriteNetworkJSON] to write one. Exported
// networks re-import identically.
//
// # Route Format
//
// [WriteRouteJSON] writes a search outcome:
//
//	{
//	  "status": "found",
//	  "hops": 3,
//	  "transfers": 1,
//	  "states": [{"station": "A", "line": "Red"}, ...],
//	  "legs": [{"line": "Red", "stations": ["A", "B"]}, ...]
//	}
//
// For unsuccessful searches status is "no such station" or "no route found"
// and the remaining fields are omitted.
//
// # Graph Format
//
// [WriteGraphJSON] exports the state graph in node-link form, for inspection
// with external graph tools. Node IDs are "station@line":
//
//	{
//	  "nodes": [{"id": "A@Red", "station": "A", "line": "Red"}, ...],
//	  "edges": [{"from": "A@Red", "to": "B@Red"}, {"from": "B@Red", "to": "B@Blue", "transfer": true}, ...]
//	}
//
// # Concurrency
//
// All functions only read their inputs and are safe to call concurrently.
package io

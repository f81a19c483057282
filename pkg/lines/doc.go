// Package lines loads transit line definitions from disk.
//
// # Sources
//
// A lines source is either a directory or a single network file.
//
// A directory holds one text file per line. The file name without its ".txt"
// extension is the line ID and each non-blank text line is a station, in
// riding order:
//
//	lines/
//	  L1.txt      Hospital de Bellvitge
//	  L3.txt      Espanya
//	  ...         Catalunya
//
// A network file lists all lines in one document. YAML, TOML and JSON are
// accepted, chosen by extension:
//
//	# network.yaml
//	lines:
//	  - id: L1
//	    stations: [Hospital de Bellvitge, Espanya, Catalunya]
//
//	# network.toml
//	[[lines]]
//	id = "L1"
//	stations = ["Hospital de Bellvitge", "Espanya", "Catalunya"]
//
// JSON uses the format of package io.
//
// # Ordering
//
// Directory lines are ordered by ID; file lines keep document order. The
// order is the network line order that route search uses to break ties.
//
// # Validation
//
// Station names are trimmed and blank entries dropped. [Validate] then
// rejects lines without stations, unusable IDs or station names, and, unless
// [Options.AllowDuplicateStations] is set, lines that list one station twice.
// Every problem is reported at once inside a single INVALID_NETWORK error.
package lines

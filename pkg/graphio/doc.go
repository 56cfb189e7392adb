// Package graphio provides JSON and TOML import and export for directed
// weighted graphs.
//
// # Overview
//
// A graph description file lists its vertices and weighted edges:
//
//	{
//	  "vertices": ["A", "B", "F"],
//	  "edges": [
//	    {"from": "A", "to": "B", "weight": 5},
//	    {"from": "B", "to": "F", "weight": 3}
//	  ]
//	}
//
// The TOML form is equivalent, using an [[edges]] table array. Vertices and
// edge endpoints may be given as numbers; they are coerced to canonical
// string labels via digraph.CoerceLabel, so a JSON vertex 3 is addressed as
// "3" afterwards. Every edge requires a finite numeric weight.
//
// # Import
//
// Use [Import] to dispatch on the file extension, or [ReadJSON]/[ReadTOML]
// for io.Reader input. Validation errors (duplicate vertices, unknown edge
// endpoints, bad weights) are wrapped with the offending element and keep
// the digraph sentinel errors intact for errors.Is.
//
// # Export
//
// [WriteJSON]/[WriteTOML] (and the Export file helpers) emit vertices and
// edges in sorted order, so exported files are stable and round-trip
// exactly. Reading a description file is driver-side input handling; the
// graph itself remains a purely in-memory value.
package graphio

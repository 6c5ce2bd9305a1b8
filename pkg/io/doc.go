// Package io provides the JSON report format of a dependency analysis.
//
// # JSON Format
//
//	{
//	  "root": "A",
//	  "max_depth": 10,
//	  "nodes": [
//	    {"id": "A", "dependencies": ["B", "C"]},
//	    {"id": "B", "dependencies": ["C"]},
//	    {"id": "C", "dependencies": []}
//	  ],
//	  "cycles": [],
//	  "reverse": [
//	    {"id": "A", "dependents": []},
//	    {"id": "B", "dependents": ["A"]},
//	    {"id": "C", "dependents": ["A", "B"]}
//	  ]
//	}
//
// Nodes and reverse entries follow adjacency iteration order, so a report is
// byte-stable for a given graph. "nodes" holds explored packages only; a
// terminal leaf appears as a dependency but never as a node.
//
// # Export
//
// Use [WriteJSON] for any io.Writer or [ExportJSON] for a file path.
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode a report and rebuild its graph with
// [Report.Graph], so a saved analysis can be rendered again without querying
// the package index.
package io

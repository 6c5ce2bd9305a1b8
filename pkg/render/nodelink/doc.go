// Package nodelink renders dependency graphs as node-link diagrams.
//
// [ToDOT] serializes an adjacency map to Graphviz DOT text. Packages without
// dependencies get their own declaration so leaves and isolated packages
// stay visible:
//
//	digraph dependencies {
//	  "A" -> "B";
//	  "B";
//	}
//
// With [Options.Styled] the output carries box-node attributes and fills the
// packages in [Options.Highlight]; this is the form fed to [RenderSVG] and
// [RenderPNG], which rasterize in-process with [github.com/goccy/go-graphviz].
package nodelink

// Package render draws existential graphs in their native diagrammatic form.
//
// Cuts become nested Graphviz clusters and atoms become plain-text nodes, so
// the output mirrors how the notation is drawn on paper: each negation is an
// enclosure around its contents. Odd nesting levels can be shaded to make the
// polarity of each area visible at a glance.
//
// ToDOT produces the DOT source; RenderSVG and RenderPNG rasterize it with
// Graphviz.
package render

// Package forms provides an absolute-coordinate, property-driven widget
// layout model for Go.
//
// Users import this single package for the complete public API: node
// construction, the Location/Size property surface, declarative sizing
// policies (AutoSize with GrowOnly/GrowAndShrink), edge anchoring and
// docking, flow and table child placement, and declarative tree loading
// from TOML. The engine resolves the rectangle of every node in the tree
// deterministically and to a fixed point; rendering, input dispatch, and
// text shaping are external collaborators reached through the narrow
// Measurer and Placer contracts.
package forms

// Package layout implements the pure geometry engines behind go-forms.
//
// It knows nothing about the node tree: every function takes plain value
// inputs (rectangles, sizes, per-item descriptors) and returns resolved
// rectangles. The engines cover edge docking, anchor stretch/translate,
// sequential flow placement with wrapping, table track resolution with
// mixed absolute/percent/auto tracks, and auto-size policy math with
// min/max clamping. Types are re-exported through the root forms package
// for public consumption.
package layout

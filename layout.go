// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package forms

import "github.com/formkit/go-forms/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Dock selects the edge-allocation mode of a node within its container.
type Dock = layout.Dock

const (
	DockNone   = layout.DockNone
	DockTop    = layout.DockTop
	DockBottom = layout.DockBottom
	DockLeft   = layout.DockLeft
	DockRight  = layout.DockRight
	DockFill   = layout.DockFill
)

// AnchorSet is a bitmask of container client edges a node keeps a fixed
// distance from as the container resizes.
type AnchorSet = layout.AnchorSet

const (
	AnchorNone   = layout.AnchorNone
	AnchorTop    = layout.AnchorTop
	AnchorBottom = layout.AnchorBottom
	AnchorLeft   = layout.AnchorLeft
	AnchorRight  = layout.AnchorRight

	// DefaultAnchor pins the top-left corner, leaving a node in place as
	// its container resizes.
	DefaultAnchor = layout.DefaultAnchor
)

// AutoSizeMode controls whether an auto-sized node may shrink below a
// previously reached size.
type AutoSizeMode = layout.AutoSizeMode

const (
	GrowOnly      = layout.GrowOnly
	GrowAndShrink = layout.GrowAndShrink
)

// FlowDirection specifies the primary axis and sense of a flow container.
type FlowDirection = layout.FlowDirection

const (
	LeftToRight = layout.LeftToRight
	TopDown     = layout.TopDown
	RightToLeft = layout.RightToLeft
	BottomUp    = layout.BottomUp
)

// SizeKind specifies how a table track's extent is interpreted.
type SizeKind = layout.SizeKind

const (
	SizeAbsolute = layout.SizeAbsolute
	SizePercent  = layout.SizePercent
	SizeAuto     = layout.SizeAuto
)

// Track declares the sizing of one table row or column.
type Track = layout.Track

// Cell assigns a child to a table position.
type Cell = layout.Cell

// NewRect creates a Rect from a position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on every side.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// AbsoluteTrack returns a table track with a fixed pixel extent.
func AbsoluteTrack(px int) Track {
	return layout.AbsoluteTrack(px)
}

// PercentTrack returns a table track sized as a share of remaining space.
func PercentTrack(p float64) Track {
	return layout.PercentTrack(p)
}

// AutoTrack returns a table track sized to its largest single-span
// occupant.
func AutoTrack() Track {
	return layout.AutoTrack()
}

// LayoutKind selects which engine resolves a container's children.
type LayoutKind uint8

const (
	// LayoutManual places children by their own Location, honoring Dock
	// and Anchor.
	LayoutManual LayoutKind = iota
	// LayoutFlow places children sequentially along a primary axis with
	// optional wrapping.
	LayoutFlow
	// LayoutTable places children into grid cells sized from row and
	// column tracks.
	LayoutTable
)

// String returns the lowercase name of the kind.
func (k LayoutKind) String() string {
	switch k {
	case LayoutManual:
		return "manual"
	case LayoutFlow:
		return "flow"
	case LayoutTable:
		return "table"
	default:
		return "unknown"
	}
}

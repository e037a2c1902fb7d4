package forms

import (
	"github.com/formkit/go-forms/internal/layout"
)

// Node is a layout participant. Any Node may own an ordered list of
// children, in which case it also acts as a container whose LayoutKind
// selects the engine resolving them. Child order is Z-order: ascending
// index, back to front, and the order docked and flowed children are
// consumed in.
//
// A Node and its whole tree are owned by a single goroutine; no method is
// safe for concurrent use.
type Node struct {
	parent   *Node
	children []*Node
	name     string

	// bounds is the resolved geometry, relative to the parent's origin.
	bounds  Rect
	margin  Edges
	padding Edges
	minSize Size
	maxSize Size

	anchor  AnchorSet
	offsets layout.AnchorOffsets
	dock    Dock

	autoSize     bool
	autoSizeMode AutoSizeMode
	modeLocked   bool
	// originalSize is the GrowOnly high-water mark. Established when
	// auto-sizing is enabled under GrowOnly, cleared when auto-sizing is
	// disabled or the mode switches to GrowAndShrink.
	originalSize *Size

	kind      LayoutKind
	flowDir   FlowDirection
	wrap      bool
	flowBreak bool

	rowCount  int
	colCount  int
	rowTracks []Track
	colTracks []Track
	cell      Cell
	// cellOffset is the node's position within its table cell, captured
	// from the declared Location when the node joins a table container
	// and recaptured on explicit moves. cellOrigin is the origin of the
	// cell the table engine last assigned.
	cellOffset Point
	cellOrigin Point

	measurer Measurer
	placer   Placer

	// resolving is the re-entrancy latch: while a resolution pass is
	// active on this container, further requests are suppressed, not
	// queued.
	resolving     bool
	suspendCount  int
	layoutPending bool

	// Pass bookkeeping, used only on the node a pass was entered through.
	passDepth   int
	passChanged []*Node
}

// New creates a Node with zeroed geometry and default spacing, then
// applies the given options.
func New(opts ...Option) *Node {
	n := &Node{
		anchor:       DefaultAnchor,
		autoSizeMode: GrowOnly,
		cell:         Cell{ColumnSpan: 1, RowSpan: 1},
	}
	for _, opt := range opts {
		opt(n)
	}
	n.establishMark()
	return n
}

// root returns the top of the tree containing n.
func (n *Node) root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// ClientRect returns the node's own bounds at the origin, inset by its
// padding: the area children are placed in, in the coordinate space child
// Locations are expressed in.
func (n *Node) ClientRect() Rect {
	return Rect{Width: n.bounds.Width, Height: n.bounds.Height}.Inset(n.padding)
}

// AbsoluteBounds returns the node's bounds in root coordinates.
func (n *Node) AbsoluteBounds() Rect {
	r := n.bounds
	for p := n.parent; p != nil; p = p.parent {
		r.X += p.bounds.X
		r.Y += p.bounds.Y
	}
	return r
}

// VisibleBounds returns the node's bounds in root coordinates, clipped to
// the client area of every ancestor. The zero Rect means the node is fully
// clipped out.
func (n *Node) VisibleBounds() Rect {
	r := n.AbsoluteBounds()
	for p := n.parent; p != nil; p = p.parent {
		abs := p.AbsoluteBounds()
		r = r.Intersect(p.ClientRect().Translate(abs.X, abs.Y))
	}
	return r
}

// constraint returns the node's size clamp.
func (n *Node) constraint() layout.Constraint {
	return layout.Constraint{Min: n.minSize, Max: n.maxSize}
}

// captureAnchors records the node's current edge distances within its
// parent's client rectangle. Called whenever anchoring is established or
// the node's bounds are explicitly assigned.
func (n *Node) captureAnchors() {
	if n.parent == nil {
		return
	}
	n.offsets = layout.CaptureOffsets(n.bounds, n.parent.ClientRect())
}

// measureHint returns the available-space hint handed to Measurers: the
// parent's client size, or the node's own size at the root.
func (n *Node) measureHint() Size {
	if n.parent != nil {
		return n.parent.ClientRect().Size()
	}
	return n.bounds.Size()
}

// naturalSize returns the node's content-driven size: the bounding box of
// its children plus padding for containers, or the measured content size
// for leaves. ok is false when no measurement is available.
func (n *Node) naturalSize(hint Size) (s Size, ok bool) {
	if len(n.children) > 0 {
		maxRight, maxBottom := 0, 0
		for _, child := range n.children {
			outer := child.bounds.Outset(child.margin)
			if outer.Right() > maxRight {
				maxRight = outer.Right()
			}
			if outer.Bottom() > maxBottom {
				maxBottom = outer.Bottom()
			}
		}
		return Size{
			Width:  maxRight + n.padding.Right,
			Height: maxBottom + n.padding.Bottom,
		}, true
	}
	if n.measurer != nil {
		return n.measurer.Measure(n, hint)
	}
	return Size{}, false
}

// preferredSize is the size the node asks its container for: the current
// size (clamped) for fixed nodes, or the auto-size resolution of the
// natural size. Under GrowOnly this advances the high-water mark, so it
// is only called from resolution passes.
func (n *Node) preferredSize(hint Size) Size {
	c := n.constraint()
	if !n.autoSize {
		return c.Apply(n.bounds.Size())
	}
	nat, ok := n.naturalSize(hint)
	if !ok {
		// Measurement unavailable: fall back to the last-good geometry.
		nat = n.bounds.Size()
	}
	return layout.ResolveAutoSize(nat, n.autoSizeMode, n.originalSize, c)
}

// parentControlsSize reports whether the parent's engine owns this node's
// bounds, in which case self-driven auto-sizing must not fight it.
func (n *Node) parentControlsSize() bool {
	if n.parent == nil {
		return false
	}
	if n.dock != DockNone {
		return true
	}
	return n.parent.kind == LayoutFlow || n.parent.kind == LayoutTable
}

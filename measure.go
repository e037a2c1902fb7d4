package forms

// Measurer reports a node's natural, content-based size. Implementations
// are supplied by the rendering/text layer, must be synchronous and
// non-blocking, and must not mutate the tree they are asked about. The
// hint is the space available to the node (for example, the width text
// may wrap into); a cached or approximate value is acceptable.
//
// Returning false means no measurement is available; the resolver falls
// back to the node's last known geometry rather than failing the pass.
type Measurer interface {
	Measure(n *Node, hint Size) (Size, bool)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(n *Node, hint Size) (Size, bool)

// Measure calls f.
func (f MeasureFunc) Measure(n *Node, hint Size) (Size, bool) {
	return f(n, hint)
}

// Placer applies resolved geometry to a node's on-screen representation.
// It is supplied by the windowing/rendering layer, attached to the tree
// root, and invoked once per node whose resolved geometry changed in a
// pass, after the pass has completed. The bounds are absolute (root
// coordinate space). Placers must not mutate the tree.
type Placer interface {
	Place(n *Node, bounds Rect)
}

// PlaceFunc adapts a function to the Placer interface.
type PlaceFunc func(n *Node, bounds Rect)

// Place calls f.
func (f PlaceFunc) Place(n *Node, bounds Rect) {
	f(n, bounds)
}

package layout

// Edges holds insets for the four sides of a box. Used for both Margin
// (outside a node's bounds) and Padding (inside them).
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges from a vertical (top/bottom) and a
// horizontal (left/right) value.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

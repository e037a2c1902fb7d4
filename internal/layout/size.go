package layout

// Point is an x/y coordinate pair.
type Point struct {
	X, Y int
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{
		Width:  max(s.Width, other.Width),
		Height: max(s.Height, other.Height),
	}
}

// Expand grows the size by the given edges on each axis.
func (s Size) Expand(e Edges) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

package layout

// AutoSizeMode controls whether an auto-sized node may shrink below a
// previously reached size.
type AutoSizeMode uint8

const (
	// GrowOnly never lets the resolved size drop below the high-water
	// mark recorded since auto-sizing was enabled.
	GrowOnly AutoSizeMode = iota
	// GrowAndShrink tracks the natural size exactly.
	GrowAndShrink
)

// String returns the lowercase name of the mode.
func (m AutoSizeMode) String() string {
	switch m {
	case GrowOnly:
		return "growonly"
	case GrowAndShrink:
		return "growandshrink"
	default:
		return "unknown"
	}
}

// ResolveAutoSize computes a node's resolved size from its natural size.
// Under GrowOnly with an established original size, the natural size is
// ratcheted against the high-water mark component-wise and the mark is
// updated to the result, so it never decreases. Under GrowAndShrink the
// mark is ignored. The result is clamped into the constraint.
func ResolveAutoSize(natural Size, mode AutoSizeMode, original *Size, c Constraint) Size {
	s := natural
	if mode == GrowOnly && original != nil {
		s = s.Max(*original)
		*original = s
	}
	return c.Apply(s)
}

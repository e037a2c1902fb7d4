package layout

// Constraint is a minimum/maximum size clamp applied after every
// resolution. A Max axis of zero means that axis is unbounded.
type Constraint struct {
	Min Size
	Max Size
}

// Width clamps a width into the constraint.
func (c Constraint) Width(v int) int {
	return clampDim(v, c.Min.Width, c.Max.Width)
}

// Height clamps a height into the constraint.
func (c Constraint) Height(v int) int {
	return clampDim(v, c.Min.Height, c.Max.Height)
}

// Apply clamps both dimensions of a size into the constraint.
func (c Constraint) Apply(s Size) Size {
	return Size{Width: c.Width(s.Width), Height: c.Height(s.Height)}
}

// clampDim restricts v to [minVal, maxVal] and the non-negative range.
// A maxVal of zero means unbounded. If minVal > maxVal, minVal wins.
func clampDim(v, minVal, maxVal int) int {
	if maxVal > 0 && v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	if v < 0 {
		v = 0
	}
	return v
}

package layout

// FlowDirection specifies the primary axis and sense of a flow container.
type FlowDirection uint8

const (
	LeftToRight FlowDirection = iota // Rows growing rightward
	TopDown                          // Columns growing downward
	RightToLeft                      // Rows growing leftward
	BottomUp                         // Columns growing upward
)

// String returns the lowercase name of the direction.
func (d FlowDirection) String() string {
	switch d {
	case LeftToRight:
		return "lefttoright"
	case TopDown:
		return "topdown"
	case RightToLeft:
		return "righttoleft"
	case BottomUp:
		return "bottomup"
	default:
		return "unknown"
	}
}

// horizontal reports whether the primary axis is the x axis.
func (d FlowDirection) horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// reversed reports whether placement starts at the trailing edge.
func (d FlowDirection) reversed() bool {
	return d == RightToLeft || d == BottomUp
}

// FlowItem describes one child for flow placement.
type FlowItem struct {
	Size   Size
	Margin Edges
	Break  bool // force a new line before this item
}

// flowLine tracks cursor state for the line under construction.
type flowLine struct {
	main  int // extent consumed along the primary axis
	cross int // start of the line on the secondary axis
	max   int // largest outer cross extent on the line
}

// FlowPlace walks items in order, accumulating extent along the primary
// axis from the direction's leading edge. Each item is placed at the
// cursor plus its margin; the cursor advances by the item's outer extent.
// When wrap is enabled, an item that would exceed the remaining primary
// space, or that carries the Break flag, starts a new line. The secondary
// advance of a line is the largest outer extent placed on it.
func FlowPlace(client Rect, dir FlowDirection, wrap bool, items []FlowItem) []Rect {
	rects := make([]Rect, len(items))
	horizontal := dir.horizontal()

	mainSpace := client.Height
	if horizontal {
		mainSpace = client.Width
	}

	var line flowLine
	for i, it := range items {
		outerMain := it.Size.Height + it.Margin.Vertical()
		outerCross := it.Size.Width + it.Margin.Horizontal()
		if horizontal {
			outerMain, outerCross = outerCross, outerMain
		}

		if wrap && line.main > 0 && (it.Break || line.main+outerMain > mainSpace) {
			line.cross += line.max
			line.main = 0
			line.max = 0
		}

		rects[i] = flowRect(client, dir, line, outerMain, it)
		line.main += outerMain
		if outerCross > line.max {
			line.max = outerCross
		}
	}
	return rects
}

// flowRect converts line-relative placement into client coordinates.
func flowRect(client Rect, dir FlowDirection, line flowLine, outerMain int, it FlowItem) Rect {
	var x, y int
	switch dir {
	case LeftToRight:
		x = client.X + line.main
		y = client.Y + line.cross
	case RightToLeft:
		x = client.Right() - line.main - outerMain
		y = client.Y + line.cross
	case TopDown:
		x = client.X + line.cross
		y = client.Y + line.main
	case BottomUp:
		x = client.X + line.cross
		y = client.Bottom() - line.main - outerMain
	}
	return Rect{
		X:      x + it.Margin.Left,
		Y:      y + it.Margin.Top,
		Width:  it.Size.Width,
		Height: it.Size.Height,
	}
}

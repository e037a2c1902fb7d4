package layout

// Dock selects the edge-allocation mode of a node within its container.
type Dock uint8

const (
	DockNone Dock = iota
	DockTop
	DockBottom
	DockLeft
	DockRight
	DockFill
)

// String returns the lowercase name of the dock mode.
func (d Dock) String() string {
	switch d {
	case DockNone:
		return "none"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockFill:
		return "fill"
	default:
		return "unknown"
	}
}

// DockItem describes one docked child for allocation.
type DockItem struct {
	Dock   Dock
	Size   Size // requested size (preferred for auto-sized nodes)
	Min    Size
	Max    Size // zero axis = unbounded
	Margin Edges
}

// AllocateDock splits the client rectangle among items in slice order
// (ascending Z-order). Top/Bottom items are forced to the remaining width
// and consume their requested height plus margins from the corresponding
// side; Left/Right items are forced to the remaining height and consume
// width. Fill items receive whatever rectangle remains after every edge
// item is allocated, in place, last.
//
// More than one Fill item is an unspecified configuration: every Fill
// item receives the same remaining rectangle and they overlap.
//
// The returned rects parallel items and are already inset by each item's
// margin. remaining is the unallocated rectangle after all edge items.
func AllocateDock(client Rect, items []DockItem) (rects []Rect, remaining Rect) {
	rects = make([]Rect, len(items))
	remaining = client

	for i, it := range items {
		c := Constraint{Min: it.Min, Max: it.Max}
		switch it.Dock {
		case DockTop:
			w := c.Width(remaining.Width - it.Margin.Horizontal())
			h := c.Height(it.Size.Height)
			rects[i] = Rect{
				X:      remaining.X + it.Margin.Left,
				Y:      remaining.Y + it.Margin.Top,
				Width:  w,
				Height: h,
			}
			consumed := h + it.Margin.Vertical()
			remaining.Y += consumed
			remaining.Height -= consumed
		case DockBottom:
			w := c.Width(remaining.Width - it.Margin.Horizontal())
			h := c.Height(it.Size.Height)
			rects[i] = Rect{
				X:      remaining.X + it.Margin.Left,
				Y:      remaining.Bottom() - h - it.Margin.Bottom,
				Width:  w,
				Height: h,
			}
			remaining.Height -= h + it.Margin.Vertical()
		case DockLeft:
			w := c.Width(it.Size.Width)
			h := c.Height(remaining.Height - it.Margin.Vertical())
			rects[i] = Rect{
				X:      remaining.X + it.Margin.Left,
				Y:      remaining.Y + it.Margin.Top,
				Width:  w,
				Height: h,
			}
			consumed := w + it.Margin.Horizontal()
			remaining.X += consumed
			remaining.Width -= consumed
		case DockRight:
			w := c.Width(it.Size.Width)
			h := c.Height(remaining.Height - it.Margin.Vertical())
			rects[i] = Rect{
				X:      remaining.Right() - w - it.Margin.Right,
				Y:      remaining.Y + it.Margin.Top,
				Width:  w,
				Height: h,
			}
			remaining.Width -= w + it.Margin.Horizontal()
		}
		if remaining.Width < 0 {
			remaining.Width = 0
		}
		if remaining.Height < 0 {
			remaining.Height = 0
		}
	}

	// Fill items take the leftover rectangle, clamped by their own
	// constraints.
	for i, it := range items {
		if it.Dock != DockFill {
			continue
		}
		c := Constraint{Min: it.Min, Max: it.Max}
		r := remaining.Inset(it.Margin)
		r.Width = c.Width(r.Width)
		r.Height = c.Height(r.Height)
		rects[i] = r
	}
	return rects, remaining
}

package forms

// Option configures a Node at construction time. Options normalize
// rather than error; invalid mutations on a live tree go through the
// setter methods instead.
type Option func(*Node)

// WithName sets the node's name.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// WithLocation sets the node's top-left corner relative to its parent's
// origin.
func WithLocation(x, y int) Option {
	return func(n *Node) {
		n.bounds.X = x
		n.bounds.Y = y
	}
}

// WithSize sets the node's dimensions. Negative values are floored to
// zero.
func WithSize(w, h int) Option {
	return func(n *Node) {
		n.bounds.Width = max(w, 0)
		n.bounds.Height = max(h, 0)
	}
}

// WithBounds sets position and dimensions in one option.
func WithBounds(x, y, w, h int) Option {
	return func(n *Node) {
		n.bounds = NewRect(x, y, max(w, 0), max(h, 0))
	}
}

// WithMargin sets the node's outer insets.
func WithMargin(e Edges) Option {
	return func(n *Node) {
		n.margin = e
	}
}

// WithPadding sets the container's inner insets.
func WithPadding(e Edges) Option {
	return func(n *Node) {
		n.padding = e
	}
}

// WithMinimumSize sets the lower size clamp.
func WithMinimumSize(w, h int) Option {
	return func(n *Node) {
		n.minSize = Size{Width: max(w, 0), Height: max(h, 0)}
	}
}

// WithMaximumSize sets the upper size clamp. A zero axis is unbounded.
func WithMaximumSize(w, h int) Option {
	return func(n *Node) {
		n.maxSize = Size{Width: max(w, 0), Height: max(h, 0)}
	}
}

// WithAnchor sets the anchored edge set and clears Dock.
func WithAnchor(a AnchorSet) Option {
	return func(n *Node) {
		n.anchor = a
		n.dock = DockNone
	}
}

// WithDock sets the docking mode and resets Anchor to the default.
func WithDock(d Dock) Option {
	return func(n *Node) {
		n.dock = d
		n.anchor = DefaultAnchor
	}
}

// WithAutoSize enables content-driven sizing.
func WithAutoSize() Option {
	return func(n *Node) {
		n.autoSize = true
	}
}

// WithAutoSizeMode sets the auto-size growth policy.
func WithAutoSizeMode(m AutoSizeMode) Option {
	return func(n *Node) {
		n.autoSizeMode = m
	}
}

// WithLockedAutoSizeMode fixes the growth policy for the node's lifetime;
// SetAutoSizeMode will reject changes. Composite widgets use this to pin
// GrowAndShrink behavior.
func WithLockedAutoSizeMode(m AutoSizeMode) Option {
	return func(n *Node) {
		n.autoSizeMode = m
		n.modeLocked = true
	}
}

// WithLayoutKind selects the engine resolving the node's children.
func WithLayoutKind(k LayoutKind) Option {
	return func(n *Node) {
		n.kind = k
	}
}

// WithFlow makes the node a flow container with the given direction and
// wrapping.
func WithFlow(dir FlowDirection, wrap bool) Option {
	return func(n *Node) {
		n.kind = LayoutFlow
		n.flowDir = dir
		n.wrap = wrap
	}
}

// WithTable makes the node a table container with the given grid shape.
func WithTable(rows, cols int) Option {
	return func(n *Node) {
		n.kind = LayoutTable
		n.rowCount = max(rows, 0)
		n.colCount = max(cols, 0)
	}
}

// WithRowTracks declares the table's row sizing tracks.
func WithRowTracks(tracks ...Track) Option {
	return func(n *Node) {
		n.rowTracks = append([]Track(nil), tracks...)
	}
}

// WithColumnTracks declares the table's column sizing tracks.
func WithColumnTracks(tracks ...Track) Option {
	return func(n *Node) {
		n.colTracks = append([]Track(nil), tracks...)
	}
}

// WithCell assigns the node's table position.
func WithCell(column, row int) Option {
	return func(n *Node) {
		n.cell.Column = max(column, 0)
		n.cell.Row = max(row, 0)
	}
}

// WithCellSpan sets how many columns and rows the node's cell covers.
func WithCellSpan(columnSpan, rowSpan int) Option {
	return func(n *Node) {
		n.cell.ColumnSpan = max(columnSpan, 1)
		n.cell.RowSpan = max(rowSpan, 1)
	}
}

// WithFlowBreak forces a new flow line before this node.
func WithFlowBreak() Option {
	return func(n *Node) {
		n.flowBreak = true
	}
}

// WithMeasurer sets the node's content measurer.
func WithMeasurer(m Measurer) Option {
	return func(n *Node) {
		n.measurer = m
	}
}

// WithText attaches a text measurer for the given content, sized with
// wrap-aware word segmentation and display cell widths.
func WithText(s string) Option {
	return func(n *Node) {
		n.measurer = NewTextMeasurer(s)
	}
}

// WithPlacer attaches the placement primitive. Only the placer on the
// tree root is consulted.
func WithPlacer(p Placer) Option {
	return func(n *Node) {
		n.placer = p
	}
}

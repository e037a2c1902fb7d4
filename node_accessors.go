package forms

// --- Geometry ---

// Left returns the x-coordinate relative to the parent's origin.
func (n *Node) Left() int {
	return n.bounds.X
}

// SetLeft moves the node horizontally.
func (n *Node) SetLeft(v int) {
	r := n.bounds
	r.X = v
	n.setBoundsUser(r, "Left")
}

// Top returns the y-coordinate relative to the parent's origin.
func (n *Node) Top() int {
	return n.bounds.Y
}

// SetTop moves the node vertically.
func (n *Node) SetTop(v int) {
	r := n.bounds
	r.Y = v
	n.setBoundsUser(r, "Top")
}

// Width returns the resolved width.
func (n *Node) Width() int {
	return n.bounds.Width
}

// SetWidth resizes the node. A negative width is rejected.
func (n *Node) SetWidth(v int) error {
	r := n.bounds
	r.Width = v
	return n.setBoundsUser(r, "Width")
}

// Height returns the resolved height.
func (n *Node) Height() int {
	return n.bounds.Height
}

// SetHeight resizes the node. A negative height is rejected.
func (n *Node) SetHeight(v int) error {
	r := n.bounds
	r.Height = v
	return n.setBoundsUser(r, "Height")
}

// Location returns the top-left corner relative to the parent's origin.
func (n *Node) Location() Point {
	return n.bounds.Location()
}

// SetLocation moves the node.
func (n *Node) SetLocation(x, y int) {
	r := n.bounds
	r.X, r.Y = x, y
	n.setBoundsUser(r, "Location")
}

// Size returns the resolved dimensions.
func (n *Node) Size() Size {
	return n.bounds.Size()
}

// SetSize resizes the node. Negative dimensions are rejected.
func (n *Node) SetSize(w, h int) error {
	r := n.bounds
	r.Width, r.Height = w, h
	return n.setBoundsUser(r, "Size")
}

// Bounds returns the resolved rectangle relative to the parent's origin.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// SetBounds assigns position and dimensions in one mutation.
func (n *Node) SetBounds(x, y, w, h int) error {
	return n.setBoundsUser(NewRect(x, y, w, h), "Bounds")
}

// setBoundsUser applies an explicitly assigned rectangle: validate, clamp
// into the node's constraint, recapture anchor distances, re-resolve the
// node's own subtree if the size changed, then notify the owning
// container.
func (n *Node) setBoundsUser(r Rect, field string) error {
	if r.Width < 0 || r.Height < 0 {
		return configErrorf(field, "negative size %dx%d", r.Width, r.Height)
	}
	c := n.constraint()
	r.Width = c.Width(r.Width)
	r.Height = c.Height(r.Height)
	if r == n.bounds {
		return nil
	}
	root := n.root()
	root.beginPass()
	defer root.endPass()

	old := n.bounds
	n.bounds = r
	n.captureAnchors()
	if n.parent != nil && n.parent.kind == LayoutTable {
		n.cellOffset = Point{X: r.X - n.cellOrigin.X, Y: r.Y - n.cellOrigin.Y}
	}
	n.recordChanged()
	if r.Size() != old.Size() {
		n.resolve()
	}
	n.invalidateLayout()
	return nil
}

// --- Spacing and constraints ---

// Margin returns the node's outer insets.
func (n *Node) Margin() Edges {
	return n.margin
}

// SetMargin assigns the node's outer insets.
func (n *Node) SetMargin(e Edges) {
	n.margin = e
	n.invalidateLayout()
}

// Padding returns the container's inner insets.
func (n *Node) Padding() Edges {
	return n.padding
}

// SetPadding assigns the container's inner insets and re-resolves its
// children against the new client rectangle.
func (n *Node) SetPadding(e Edges) {
	n.padding = e
	n.PerformLayout()
}

// MinimumSize returns the lower size clamp.
func (n *Node) MinimumSize() Size {
	return n.minSize
}

// SetMinimumSize assigns the lower size clamp and reclamps the node.
func (n *Node) SetMinimumSize(s Size) error {
	if s.Width < 0 || s.Height < 0 {
		return configErrorf("MinimumSize", "negative size %dx%d", s.Width, s.Height)
	}
	n.minSize = s
	n.reclamp()
	return nil
}

// MaximumSize returns the upper size clamp. A zero axis is unbounded.
func (n *Node) MaximumSize() Size {
	return n.maxSize
}

// SetMaximumSize assigns the upper size clamp and reclamps the node.
func (n *Node) SetMaximumSize(s Size) error {
	if s.Width < 0 || s.Height < 0 {
		return configErrorf("MaximumSize", "negative size %dx%d", s.Width, s.Height)
	}
	n.maxSize = s
	n.reclamp()
	return nil
}

// reclamp reapplies the constraint to the current bounds after a
// constraint change, then re-resolves.
func (n *Node) reclamp() {
	c := n.constraint()
	r := n.bounds
	r.Width = c.Width(r.Width)
	r.Height = c.Height(r.Height)
	if r != n.bounds {
		n.setBoundsUser(r, "constraint")
		return
	}
	n.invalidateLayout()
}

// --- Anchoring and docking ---

// Anchor returns the anchored edge set.
func (n *Node) Anchor() AnchorSet {
	return n.anchor
}

// SetAnchor assigns the anchored edge set and clears Dock: the most
// recently set of the two wins. Edge distances are captured now.
func (n *Node) SetAnchor(a AnchorSet) {
	n.anchor = a
	n.dock = DockNone
	n.captureAnchors()
	n.invalidateLayout()
}

// Dock returns the edge-docking mode.
func (n *Node) Dock() Dock {
	return n.dock
}

// SetDock assigns the docking mode and resets Anchor to the default: the
// most recently set of the two wins.
func (n *Node) SetDock(d Dock) {
	n.dock = d
	n.anchor = DefaultAnchor
	n.captureAnchors()
	n.invalidateLayout()
}

// --- Auto-sizing ---

// AutoSize reports whether content-driven sizing is enabled.
func (n *Node) AutoSize() bool {
	return n.autoSize
}

// SetAutoSize toggles content-driven sizing. Enabling it under GrowOnly
// establishes the high-water mark at the current size; disabling clears
// the mark.
func (n *Node) SetAutoSize(v bool) {
	if n.autoSize == v {
		return
	}
	n.autoSize = v
	if v {
		n.establishMark()
	} else {
		n.originalSize = nil
	}
	n.invalidateLayout()
}

// AutoSizeMode returns the auto-size growth policy.
func (n *Node) AutoSizeMode() AutoSizeMode {
	return n.autoSizeMode
}

// SetAutoSizeMode changes the growth policy. Switching to GrowAndShrink
// clears the high-water mark. Nodes with a locked mode reject the change.
func (n *Node) SetAutoSizeMode(m AutoSizeMode) error {
	if n.modeLocked {
		return configErrorf("AutoSizeMode", "mode is locked to %s", n.autoSizeMode)
	}
	if n.autoSizeMode == m {
		return nil
	}
	n.autoSizeMode = m
	if m == GrowAndShrink {
		n.originalSize = nil
	} else {
		n.establishMark()
	}
	n.invalidateLayout()
	return nil
}

// AutoSizeModeLocked reports whether the growth policy is fixed.
func (n *Node) AutoSizeModeLocked() bool {
	return n.modeLocked
}

// OriginalSize returns the GrowOnly high-water mark, if established.
func (n *Node) OriginalSize() (Size, bool) {
	if n.originalSize == nil {
		return Size{}, false
	}
	return *n.originalSize, true
}

// establishMark records the current size as the GrowOnly high-water mark.
func (n *Node) establishMark() {
	if !n.autoSize || n.autoSizeMode != GrowOnly || n.originalSize != nil {
		return
	}
	s := n.bounds.Size()
	n.originalSize = &s
}

// --- Container configuration ---

// Name returns the node's optional name.
func (n *Node) Name() string {
	return n.name
}

// SetName assigns the node's name, used in config loading and debugging.
func (n *Node) SetName(name string) {
	n.name = name
}

// LayoutKind returns which engine resolves this container's children.
func (n *Node) LayoutKind() LayoutKind {
	return n.kind
}

// SetLayoutKind selects the engine resolving this container's children.
// Switching to a table reads each child's current Location as its
// position within its cell.
func (n *Node) SetLayoutKind(k LayoutKind) {
	n.kind = k
	if k == LayoutTable {
		for _, child := range n.children {
			child.cellOffset = child.bounds.Location()
			child.cellOrigin = Point{}
		}
	}
	n.PerformLayout()
}

// FlowDirection returns the flow container's primary axis and sense.
func (n *Node) FlowDirection() FlowDirection {
	return n.flowDir
}

// SetFlowDirection assigns the flow container's primary axis and sense.
func (n *Node) SetFlowDirection(d FlowDirection) {
	n.flowDir = d
	n.PerformLayout()
}

// WrapContents reports whether the flow container wraps to new lines.
func (n *Node) WrapContents() bool {
	return n.wrap
}

// SetWrapContents toggles flow wrapping.
func (n *Node) SetWrapContents(v bool) {
	n.wrap = v
	n.PerformLayout()
}

// FlowBreak reports whether a new flow line is forced before this node.
func (n *Node) FlowBreak() bool {
	return n.flowBreak
}

// SetFlowBreak forces (or stops forcing) a new flow line before this node.
func (n *Node) SetFlowBreak(v bool) {
	n.flowBreak = v
	n.invalidateLayout()
}

// RowCount returns the declared number of table rows.
func (n *Node) RowCount() int {
	return n.rowCount
}

// SetRowCount declares the number of table rows. Shrinking below an
// occupied row is rejected.
func (n *Node) SetRowCount(v int) error {
	if v < 0 {
		return configErrorf("RowCount", "negative count %d", v)
	}
	for _, child := range n.children {
		if child.cell.Row >= v {
			return configErrorf("RowCount", "child %q occupies row %d", child.debugName(), child.cell.Row)
		}
	}
	n.rowCount = v
	n.PerformLayout()
	return nil
}

// ColumnCount returns the declared number of table columns.
func (n *Node) ColumnCount() int {
	return n.colCount
}

// SetColumnCount declares the number of table columns. Shrinking below an
// occupied column is rejected.
func (n *Node) SetColumnCount(v int) error {
	if v < 0 {
		return configErrorf("ColumnCount", "negative count %d", v)
	}
	for _, child := range n.children {
		if child.cell.Column >= v {
			return configErrorf("ColumnCount", "child %q occupies column %d", child.debugName(), child.cell.Column)
		}
	}
	n.colCount = v
	n.PerformLayout()
	return nil
}

// RowTracks returns the declared row sizing tracks.
func (n *Node) RowTracks() []Track {
	return append([]Track(nil), n.rowTracks...)
}

// SetRowTracks declares the row sizing tracks. Rows beyond the declared
// tracks are auto-sized.
func (n *Node) SetRowTracks(tracks ...Track) error {
	if err := validateTracks("RowTracks", tracks); err != nil {
		return err
	}
	n.rowTracks = append([]Track(nil), tracks...)
	n.PerformLayout()
	return nil
}

// ColumnTracks returns the declared column sizing tracks.
func (n *Node) ColumnTracks() []Track {
	return append([]Track(nil), n.colTracks...)
}

// SetColumnTracks declares the column sizing tracks. Columns beyond the
// declared tracks are auto-sized.
func (n *Node) SetColumnTracks(tracks ...Track) error {
	if err := validateTracks("ColumnTracks", tracks); err != nil {
		return err
	}
	n.colTracks = append([]Track(nil), tracks...)
	n.PerformLayout()
	return nil
}

// validateTracks rejects negative extents and percent sets that cannot be
// renormalized because every share is zero.
func validateTracks(field string, tracks []Track) error {
	percents := 0
	percentSum := 0.0
	for i, t := range tracks {
		if t.Value < 0 {
			return configErrorf(field, "track %d has negative value %v", i, t.Value)
		}
		if t.Kind == SizePercent {
			percents++
			percentSum += t.Value
		}
	}
	if percents > 0 && percentSum == 0 {
		return configErrorf(field, "percent tracks sum to zero and cannot be renormalized")
	}
	return nil
}

// Cell returns the node's table cell assignment.
func (n *Node) Cell() Cell {
	return n.cell
}

// SetCell assigns the node's table position. Positions outside the
// parent's declared grid are rejected.
func (n *Node) SetCell(column, row int) error {
	if column < 0 || row < 0 {
		return configErrorf("Cell", "negative cell %d,%d", column, row)
	}
	c := n.cell
	c.Column, c.Row = column, row
	if n.parent != nil {
		if err := n.parent.validateCell(c); err != nil {
			return err
		}
	}
	n.cell = c
	n.invalidateLayout()
	return nil
}

// SetCellSpan assigns how many columns and rows the node's cell covers.
func (n *Node) SetCellSpan(columnSpan, rowSpan int) error {
	if columnSpan < 1 || rowSpan < 1 {
		return configErrorf("CellSpan", "spans must be at least 1, got %d,%d", columnSpan, rowSpan)
	}
	n.cell.ColumnSpan = columnSpan
	n.cell.RowSpan = rowSpan
	n.invalidateLayout()
	return nil
}

// validateCell checks a cell position against this container's declared
// grid. Undeclared counts (zero) defer validation until they are set.
func (n *Node) validateCell(c Cell) error {
	if n.kind != LayoutTable {
		return nil
	}
	if n.colCount > 0 && c.Column >= n.colCount {
		return configErrorf("Cell", "column %d outside declared count %d", c.Column, n.colCount)
	}
	if n.rowCount > 0 && c.Row >= n.rowCount {
		return configErrorf("Cell", "row %d outside declared count %d", c.Row, n.rowCount)
	}
	return nil
}

// --- Collaborators ---

// Measurer returns the node's content measurer, if any.
func (n *Node) Measurer() Measurer {
	return n.measurer
}

// SetMeasurer assigns the node's content measurer and re-resolves, since
// the natural size may have changed.
func (n *Node) SetMeasurer(m Measurer) {
	n.measurer = m
	n.invalidateLayout()
}

// Placer returns the placement primitive attached to this node.
func (n *Node) Placer() Placer {
	return n.placer
}

// SetPlacer attaches the placement primitive. Only the placer on the tree
// root is consulted.
func (n *Node) SetPlacer(p Placer) {
	n.placer = p
}

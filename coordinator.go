package forms

import (
	"github.com/formkit/go-forms/internal/debug"
	"github.com/formkit/go-forms/internal/layout"
)

// maxResolvePasses bounds the place-children/auto-size loop inside one
// container resolution. Each iteration only repeats if the container's
// own size changed, so well-formed trees settle in one or two passes.
const maxResolvePasses = 8

// PerformLayout runs a resolution pass over this container and every
// affected descendant, then propagates upward while an auto-sized
// ancestor's resolved size keeps changing. The pass completes depth-first
// before control returns, so collaborators never observe partially
// resolved geometry. While the container is suspended the pass is
// deferred until ResumeLayout.
func (n *Node) PerformLayout() {
	if n.suspendCount > 0 {
		n.layoutPending = true
		return
	}
	root := n.root()
	root.beginPass()
	defer root.endPass()

	for c := n; c != nil; c = c.parent {
		if !c.resolve() {
			break
		}
	}
}

// SuspendLayout defers resolution of this container until a matching
// ResumeLayout. Calls nest.
func (n *Node) SuspendLayout() {
	n.suspendCount++
}

// ResumeLayout re-enables resolution. If any mutation occurred while
// suspended, a single pass runs now regardless of how many there were.
func (n *Node) ResumeLayout() {
	if n.suspendCount > 0 {
		n.suspendCount--
	}
	if n.suspendCount == 0 && n.layoutPending {
		n.layoutPending = false
		n.PerformLayout()
	}
}

// invalidateLayout re-resolves the smallest subtree affected by a
// mutation on n: the owning container when n participates in
// parent-managed placement, otherwise n itself.
func (n *Node) invalidateLayout() {
	target := n
	if n.parent != nil {
		target = n.parent
	}
	target.PerformLayout()
}

// resolve runs the container's engines over its children and then
// recomputes the container's own auto-sized bounds, iterating to a fixed
// point. It reports whether the container's own size changed, which is
// the condition for notifying one level up.
//
// The resolving latch guarantees termination in the presence of
// parent/child size cycles: a re-entrant request on an active container
// is a silent no-op.
func (n *Node) resolve() bool {
	if n.resolving {
		debug.Logf("resolve %s: suppressed (re-entrant)", n.debugName())
		return false
	}
	if n.suspendCount > 0 {
		n.layoutPending = true
		return false
	}
	n.resolving = true
	defer func() { n.resolving = false }()

	changed := false
	for pass := 0; pass < maxResolvePasses; pass++ {
		n.placeChildren()
		if !n.applyAutoSize() {
			break
		}
		changed = true
	}
	return changed
}

// placeChildren runs the dock allocator and the container's layout engine
// over the child list.
func (n *Node) placeChildren() {
	if len(n.children) == 0 {
		return
	}
	client := n.ClientRect()
	hint := client.Size()

	// Table containers reinterpret Dock per cell, so the allocator only
	// runs for manual and flow containers.
	remaining := client
	if n.kind != LayoutTable {
		remaining = n.placeDocked(client, hint)
	}

	switch n.kind {
	case LayoutFlow:
		n.placeFlow(remaining, hint)
	case LayoutTable:
		n.placeTable(client, hint)
	default:
		n.placeManual(client, hint)
	}
}

// placeDocked allocates edge strips to docked children in ascending
// Z-order and returns the unclaimed rectangle.
func (n *Node) placeDocked(client Rect, hint Size) Rect {
	var docked []*Node
	var items []layout.DockItem
	for _, child := range n.children {
		if child.dock == DockNone {
			continue
		}
		docked = append(docked, child)
		items = append(items, layout.DockItem{
			Dock:   child.dock,
			Size:   child.preferredSize(hint),
			Min:    child.minSize,
			Max:    child.maxSize,
			Margin: child.margin,
		})
	}
	if len(items) == 0 {
		return client
	}
	rects, remaining := layout.AllocateDock(client, items)
	for i, child := range docked {
		n.applyChildBounds(child, rects[i])
	}
	return remaining
}

// placeManual resolves anchored and auto-sized children against the
// current client rectangle. Children without auto-sizing whose anchors
// are the default stay exactly where they were placed.
func (n *Node) placeManual(client Rect, hint Size) {
	for _, child := range n.children {
		if child.dock != DockNone {
			continue
		}
		n.placeAnchored(child, client, hint)
	}
}

// placeAnchored computes one manual child's bounds from its anchors and,
// for auto-sized children, its preferred size.
func (n *Node) placeAnchored(child *Node, client Rect, hint Size) {
	r := child.bounds
	if child.autoSize {
		pref := child.preferredSize(hint)
		r.Width = pref.Width
		r.Height = pref.Height
	}
	r = layout.ResolveAnchor(child.anchor, child.offsets, client, r, child.autoSize)
	n.applyChildBounds(child, r)
}

// placeFlow walks non-docked children along the flow direction's primary
// axis. Children carrying a non-default anchor are excluded from the flow
// and anchor-resolved instead.
func (n *Node) placeFlow(client Rect, hint Size) {
	var flowed []*Node
	var items []layout.FlowItem
	for _, child := range n.children {
		if child.dock != DockNone {
			continue
		}
		if child.anchor != DefaultAnchor {
			n.placeAnchored(child, client, hint)
			continue
		}
		flowed = append(flowed, child)
		items = append(items, layout.FlowItem{
			Size:   child.preferredSize(hint),
			Margin: child.margin,
			Break:  child.flowBreak,
		})
	}
	rects := layout.FlowPlace(client, n.flowDir, n.wrap, items)
	for i, child := range flowed {
		n.applyChildBounds(child, rects[i])
	}
}

// placeTable resolves row/column tracks against the client rectangle and
// assigns every non-docked child its (possibly spanning) cell. A child
// docked Fill expands to its cell minus margin; any other child keeps its
// preferred size at its captured cell-relative offset, so children follow
// their cells as tracks resize without accumulating drift.
func (n *Node) placeTable(client Rect, hint Size) {
	cols, rows := n.colCount, n.rowCount
	if cols <= 0 || rows <= 0 {
		return
	}
	colTracks := normalizeTracks(n.colTracks, cols)
	rowTracks := normalizeTracks(n.rowTracks, rows)

	// Auto tracks size to the largest single-span occupant.
	autoCols := make([]int, cols)
	autoRows := make([]int, rows)
	prefs := make(map[*Node]Size, len(n.children))
	for _, child := range n.children {
		pref := child.preferredSize(hint)
		prefs[child] = pref
		outer := pref.Expand(child.margin)
		cell := child.cell
		colSpan, rowSpan := cell.Span()
		if colSpan == 1 && cell.Column >= 0 && cell.Column < cols {
			autoCols[cell.Column] = max(autoCols[cell.Column], outer.Width)
		}
		if rowSpan == 1 && cell.Row >= 0 && cell.Row < rows {
			autoRows[cell.Row] = max(autoRows[cell.Row], outer.Height)
		}
	}

	colSizes := layout.ResolveTracks(colTracks, client.Width, autoCols)
	rowSizes := layout.ResolveTracks(rowTracks, client.Height, autoRows)

	for _, child := range n.children {
		cellRect := layout.CellRect(client, colSizes, rowSizes, child.cell)
		child.cellOrigin = cellRect.Location()
		var r Rect
		if child.dock == DockFill {
			r = cellRect.Inset(child.margin)
		} else {
			pref := prefs[child]
			r = Rect{
				X:      cellRect.X + child.cellOffset.X,
				Y:      cellRect.Y + child.cellOffset.Y,
				Width:  pref.Width,
				Height: pref.Height,
			}
		}
		n.applyChildBounds(child, r)
	}
}

// normalizeTracks pads or truncates the declared track list to the
// declared count; missing tracks are auto-sized.
func normalizeTracks(tracks []Track, count int) []Track {
	out := make([]Track, count)
	for i := range out {
		if i < len(tracks) {
			out[i] = tracks[i]
		} else {
			out[i] = AutoTrack()
		}
	}
	return out
}

// applyChildBounds assigns an engine-computed rectangle to a child,
// clamped by the child's own constraint. A size change re-resolves the
// child's subtree immediately (depth-first).
func (n *Node) applyChildBounds(child *Node, r Rect) {
	c := child.constraint()
	r.Width = c.Width(r.Width)
	r.Height = c.Height(r.Height)
	if r == child.bounds {
		return
	}
	old := child.bounds
	child.bounds = r
	child.recordChanged()
	if r.Size() != old.Size() {
		child.resolve()
	}
}

// applyAutoSize recomputes the container's own bounds from its content.
// It reports whether the size changed. Nodes whose bounds are owned by
// the parent's engine are sized there instead.
func (n *Node) applyAutoSize() bool {
	if !n.autoSize || n.parentControlsSize() {
		return false
	}
	pref := n.preferredSize(n.measureHint())
	if pref == n.bounds.Size() {
		return false
	}
	r := n.bounds
	r.Width = pref.Width
	r.Height = pref.Height
	if n.parent != nil {
		// Growth is attributed to the unanchored side: trailing-edge
		// distances hold, so the leading coordinate shifts backward.
		r = layout.ResolveAnchor(n.anchor, n.offsets, n.parent.ClientRect(), r, true)
	} else {
		// A detached node has no client rectangle to anchor against.
		// Hold the trailing edges directly so growth still shifts toward
		// the unanchored side before any offsets are captured.
		if n.anchor.Has(AnchorRight) && !n.anchor.Has(AnchorLeft) {
			r.X = n.bounds.Right() - r.Width
		}
		if n.anchor.Has(AnchorBottom) && !n.anchor.Has(AnchorTop) {
			r.Y = n.bounds.Bottom() - r.Height
		}
	}
	old := n.bounds
	n.bounds = r
	n.recordChanged()
	debug.Logf("autosize %s: %v -> %v", n.debugName(), old.Size(), r.Size())
	return r.Size() != old.Size()
}

// --- Pass bookkeeping ---

// beginPass opens (or nests into) a resolution pass rooted at this tree's
// root. Geometry changes are collected and flushed to the Placer once,
// when the outermost pass ends.
func (n *Node) beginPass() {
	if n.passDepth == 0 {
		n.passChanged = n.passChanged[:0]
	}
	n.passDepth++
}

// endPass closes one nesting level and, at depth zero, notifies the
// Placer once per changed node with its final absolute bounds.
func (n *Node) endPass() {
	n.passDepth--
	if n.passDepth > 0 {
		return
	}
	changed := n.passChanged
	n.passChanged = nil
	if n.placer == nil {
		return
	}
	seen := make(map[*Node]bool, len(changed))
	for _, node := range changed {
		if seen[node] || node.root() != n {
			continue
		}
		seen[node] = true
		n.placer.Place(node, node.AbsoluteBounds())
	}
}

// recordChanged notes a geometry change for the active pass.
func (n *Node) recordChanged() {
	r := n.root()
	if r.passDepth > 0 {
		r.passChanged = append(r.passChanged, n)
	}
}

// debugName identifies the node in debug traces.
func (n *Node) debugName() string {
	if n.name != "" {
		return n.name
	}
	return "node"
}

package forms

// Parent returns the node's owning container, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's child list in Z-order, ascending index from
// back to front. The slice is shared; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends children to the container, assigning each the next
// Z index, and resolves. Children already owned elsewhere, or assigned a
// cell outside a table container's declared grid, are rejected before any
// of them is attached.
func (n *Node) AddChild(children ...*Node) error {
	for _, child := range children {
		if child == nil {
			return configErrorf("AddChild", "nil child")
		}
		if child == n {
			return configErrorf("AddChild", "node cannot contain itself")
		}
		if child.parent != nil {
			return configErrorf("AddChild", "node %q already has a parent", child.debugName())
		}
		if err := n.validateCell(child.cell); err != nil {
			return err
		}
	}
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
		if n.kind == LayoutTable {
			// The declared Location reads as cell-relative in a table.
			child.cellOffset = child.bounds.Location()
			child.cellOrigin = Point{}
		}
		child.captureAnchors()
	}
	n.PerformLayout()
	return nil
}

// RemoveChild detaches a child, preserving the relative Z-order of the
// remaining children, and re-resolves the container. It reports whether
// the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c != child {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		child.parent = nil
		n.PerformLayout()
		return true
	}
	return false
}

// BringToFront moves the node to the highest Z index in its container.
// For docked siblings this also makes it the last strip consumer.
func (n *Node) BringToFront() {
	n.moveToIndex(len(n.parentChildren()) - 1)
}

// SendToBack moves the node to the lowest Z index in its container.
func (n *Node) SendToBack() {
	n.moveToIndex(0)
}

func (n *Node) parentChildren() []*Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.children
}

func (n *Node) moveToIndex(idx int) {
	p := n.parent
	if p == nil || idx < 0 {
		return
	}
	cur := -1
	for i, c := range p.children {
		if c == n {
			cur = i
			break
		}
	}
	if cur == -1 || cur == idx {
		return
	}
	p.children = append(p.children[:cur], p.children[cur+1:]...)
	p.children = append(p.children[:idx], append([]*Node{n}, p.children[idx:]...)...)
	p.PerformLayout()
}

// ChildAtPoint returns the frontmost direct child containing the point,
// or nil. The point is in this container's coordinate space.
func (n *Node) ChildAtPoint(x, y int) *Node {
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i].bounds.Contains(x, y) {
			return n.children[i]
		}
	}
	return nil
}

// Walk visits n and every descendant depth-first in Z-order, passing each
// node and its depth below n.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

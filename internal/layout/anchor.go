package layout

// AnchorSet is a bitmask of container client edges a node keeps a fixed
// distance from as the container resizes.
type AnchorSet uint8

const (
	AnchorNone   AnchorSet = 0
	AnchorTop    AnchorSet = 1 << 0
	AnchorBottom AnchorSet = 1 << 1
	AnchorLeft   AnchorSet = 1 << 2
	AnchorRight  AnchorSet = 1 << 3

	// DefaultAnchor pins a node's top-left corner to the client origin,
	// which leaves it in place as the container resizes.
	DefaultAnchor = AnchorTop | AnchorLeft
)

// Has reports whether all edges in flags are anchored.
func (a AnchorSet) Has(flags AnchorSet) bool {
	return a&flags == flags
}

// String returns a comma-separated list of anchored edge names.
func (a AnchorSet) String() string {
	if a == AnchorNone {
		return "none"
	}
	s := ""
	appendName := func(name string) {
		if s != "" {
			s += ","
		}
		s += name
	}
	if a.Has(AnchorTop) {
		appendName("top")
	}
	if a.Has(AnchorBottom) {
		appendName("bottom")
	}
	if a.Has(AnchorLeft) {
		appendName("left")
	}
	if a.Has(AnchorRight) {
		appendName("right")
	}
	return s
}

// AnchorOffsets are the distances from a node's edges to its container's
// client-rect edges, captured when anchoring is established or the node's
// bounds are explicitly assigned.
type AnchorOffsets struct {
	Left, Top, Right, Bottom int
}

// CaptureOffsets records the current edge distances of bounds within the
// given client rectangle.
func CaptureOffsets(bounds, client Rect) AnchorOffsets {
	return AnchorOffsets{
		Left:   bounds.X - client.X,
		Top:    bounds.Y - client.Y,
		Right:  client.Right() - bounds.Right(),
		Bottom: client.Bottom() - bounds.Bottom(),
	}
}

// ResolveAnchor computes a node's bounds for the container's current
// client rectangle from the captured offsets. Per axis: if both opposite
// edges are anchored the node stretches so both distances hold; if only
// the trailing edge (right/bottom) is anchored the node translates,
// preserving size; otherwise the axis is left unchanged.
//
// preserveSize skips the stretch case, for nodes whose size is owned by
// auto-sizing. Trailing-edge distances still hold, so a size increase
// shifts the leading coordinate backward: the node grows toward its
// unanchored side.
func ResolveAnchor(a AnchorSet, off AnchorOffsets, client, current Rect, preserveSize bool) Rect {
	r := current

	switch {
	case a.Has(AnchorLeft | AnchorRight):
		r.X = client.X + off.Left
		if !preserveSize {
			r.Width = client.Width - off.Left - off.Right
		}
	case a.Has(AnchorRight):
		r.X = client.Right() - off.Right - r.Width
	case a.Has(AnchorLeft):
		r.X = client.X + off.Left
	}

	switch {
	case a.Has(AnchorTop | AnchorBottom):
		r.Y = client.Y + off.Top
		if !preserveSize {
			r.Height = client.Height - off.Top - off.Bottom
		}
	case a.Has(AnchorBottom):
		r.Y = client.Bottom() - off.Bottom - r.Height
	case a.Has(AnchorTop):
		r.Y = client.Y + off.Top
	}

	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

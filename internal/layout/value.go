package layout

// SizeKind specifies how a table track's extent is interpreted.
type SizeKind uint8

const (
	SizeAbsolute SizeKind = iota // Declared pixel value
	SizePercent                  // Share of the space left after fixed tracks
	SizeAuto                     // Sized to the largest single-span occupant
)

// String returns the lowercase name of the kind.
func (k SizeKind) String() string {
	switch k {
	case SizeAbsolute:
		return "absolute"
	case SizePercent:
		return "percent"
	case SizeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Track declares the sizing of one table row or column.
type Track struct {
	Kind  SizeKind
	Value float64
}

// AbsoluteTrack returns a track with a fixed pixel extent.
func AbsoluteTrack(px int) Track {
	return Track{Kind: SizeAbsolute, Value: float64(px)}
}

// PercentTrack returns a track sized as a share of remaining space.
// The value is on a 0-100 scale (30.0 = 30%). Shares are renormalized
// against the sum of all percent tracks, so they need not total 100.
func PercentTrack(p float64) Track {
	return Track{Kind: SizePercent, Value: p}
}

// AutoTrack returns a track sized to its largest single-span occupant.
func AutoTrack() Track {
	return Track{Kind: SizeAuto}
}

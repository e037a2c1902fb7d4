package layout

import "sort"

// Cell assigns a child to a table position. Spans are at least 1.
type Cell struct {
	Column, Row         int
	ColumnSpan, RowSpan int
}

// Span returns the cell's spans normalized to at least 1.
func (c Cell) Span() (cols, rows int) {
	cols, rows = c.ColumnSpan, c.RowSpan
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// ResolveTracks computes the extent of each track against the available
// space. Absolute tracks consume their declared value and Auto tracks the
// matching entry of autoSizes (the largest single-span occupant, supplied
// by the caller). The remainder is split among Percent tracks
// proportionally to their declared shares, renormalized against their sum
// so the shares need not total 100. Leftover pixels from truncation go to
// the tracks with the largest fractional parts, so the percent extents
// always sum to the exact remainder.
//
// A track list whose percent shares sum to zero is rejected upstream as
// an invalid configuration; this function leaves such tracks at zero.
func ResolveTracks(tracks []Track, available int, autoSizes []int) []int {
	sizes := make([]int, len(tracks))
	fixed := 0
	percentSum := 0.0
	for i, t := range tracks {
		switch t.Kind {
		case SizeAbsolute:
			sizes[i] = int(t.Value)
			if sizes[i] < 0 {
				sizes[i] = 0
			}
		case SizeAuto:
			if i < len(autoSizes) && autoSizes[i] > 0 {
				sizes[i] = autoSizes[i]
			}
		case SizePercent:
			if t.Value > 0 {
				percentSum += t.Value
			}
			continue
		}
		fixed += sizes[i]
	}

	remaining := available - fixed
	if remaining <= 0 || percentSum <= 0 {
		return sizes
	}

	type fraction struct {
		idx int
		rem float64
	}
	var fracs []fraction
	distributed := 0
	for i, t := range tracks {
		if t.Kind != SizePercent || t.Value <= 0 {
			continue
		}
		exact := float64(remaining) * t.Value / percentSum
		sizes[i] = int(exact)
		distributed += sizes[i]
		fracs = append(fracs, fraction{idx: i, rem: exact - float64(sizes[i])})
	}

	// Largest-remainder rounding: hand leftover pixels to the tracks that
	// lost the most to truncation, earlier tracks first on ties.
	sort.SliceStable(fracs, func(a, b int) bool {
		return fracs[a].rem > fracs[b].rem
	})
	for k := 0; k < remaining-distributed && k < len(fracs); k++ {
		sizes[fracs[k].idx]++
	}
	return sizes
}

// CellRect returns the rectangle of the (possibly spanning) cell within
// the table area: the union of every spanned track. Positions outside the
// grid are clamped to its edges.
func CellRect(area Rect, colSizes, rowSizes []int, cell Cell) Rect {
	colSpan, rowSpan := cell.Span()
	x, w := spanExtent(area.X, colSizes, cell.Column, colSpan)
	y, h := spanExtent(area.Y, rowSizes, cell.Row, rowSpan)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// spanExtent returns the offset and extent of span consecutive tracks
// starting at index start.
func spanExtent(origin int, sizes []int, start, span int) (offset, extent int) {
	if start < 0 {
		start = 0
	}
	if start > len(sizes) {
		start = len(sizes)
	}
	offset = origin
	for _, s := range sizes[:start] {
		offset += s
	}
	end := start + span
	if end > len(sizes) {
		end = len(sizes)
	}
	for _, s := range sizes[start:end] {
		extent += s
	}
	return offset, extent
}

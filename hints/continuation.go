package hints

import "strings"

// decorationWidth is how many columns left of a message region's boundary
// hold the prefix (nick) on the row that starts a message.
const decorationWidth = 2

// startsMessage reports whether row begins a new message in the region whose
// left boundary is at col. Wrapped continuation rows leave the prefix slot
// blank, so anything printable there means a new message. This follows
// WeeChat's rendering and is not a general rule.
func startsMessage(g *Grid, row, col int) bool {
	if col < decorationWidth {
		return false
	}
	slot := g.Slice(row, col-decorationWidth, col)
	return strings.TrimSpace(string(slot)) != ""
}

// wraps reports whether text in the region may continue onto the next row.
// Regions at the row start, or right of the separator that precedes message
// text, are layout columns (buffer list, title, nicklist) and never wrap.
func wraps(bounds []int, col, separatorSkip int) bool {
	if separatorSkip <= 0 {
		return true
	}
	n := ordinal(bounds, col)
	return n >= 1 && n <= separatorSkip-1
}

// resolveContinuation shortens a match that runs into a row starting a new
// message, ending it at the end of the row before.
func resolveContinuation(g *Grid, bounds [][]int, r region, m match, separatorSkip int) match {
	startRow, _ := r.rowOf(m.start)
	lastRow := m.end / r.width
	if lastRow <= startRow {
		return m
	}
	if startRow >= len(bounds) || !wraps(bounds[startRow], r.key.Start, separatorSkip) {
		m.end = min(m.end, (startRow+1)*r.width)
		return m
	}
	for row := startRow + 1; row <= lastRow && row < g.Rows(); row++ {
		if startsMessage(g, row, r.key.Start) {
			m.end = min(m.end, row*r.width)
			break
		}
	}
	return m
}

package hints

import (
	"cmp"
	"slices"
)

// RegionKey identifies a region by the pair of consecutive boundary columns
// that enclose it. Rows contribute to a region only when they carry exactly
// this pair.
type RegionKey struct {
	Start int
	End   int
}

// fragments is the segmenter output for one region: one entry per grid row,
// empty where the row does not carry the region's boundary pair.
type fragments struct {
	key   RegionKey
	lines [][]rune
}

// region is a normalized region: every row padded to width and concatenated.
type region struct {
	key   RegionKey
	width int
	rows  int
	text  []rune
}

// rowKeys returns the boundary pairs of a single row.
func rowKeys(bounds []int) []RegionKey {
	keys := make([]RegionKey, 0, len(bounds))
	for i := 1; i < len(bounds); i++ {
		keys = append(keys, RegionKey{Start: bounds[i-1], End: bounds[i]})
	}
	return keys
}

// segmentRegions collects every boundary pair seen on any row and builds, for
// each of them, the row-aligned list of text fragments with chrome removed.
func segmentRegions(g *Grid, bounds [][]int, suffixSkip int) []fragments {
	perRow := make([]map[RegionKey]bool, len(bounds))
	seen := make(map[RegionKey]bool)
	for row, b := range bounds {
		perRow[row] = make(map[RegionKey]bool)
		for _, k := range rowKeys(b) {
			perRow[row][k] = true
			seen[k] = true
		}
	}

	keys := make([]RegionKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b RegionKey) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	out := make([]fragments, len(keys))
	for i, k := range keys {
		out[i] = fragments{key: k, lines: make([][]rune, g.Rows())}
		for row := range g.Rows() {
			if perRow[row][k] {
				out[i].lines[row] = fragment(g, row, k, suffixSkip)
			}
		}
	}
	return out
}

// fragment cuts the region's text out of a row. The boundary column itself is
// always dropped, along with up to suffixSkip spaces on either side.
func fragment(g *Grid, row int, k RegionKey, suffixSkip int) []rune {
	from := k.Start + 1 + leadingSkip(g, row, k.Start+1, suffixSkip)
	to := k.End - trailingSkip(g, row, k.End-1, suffixSkip)
	return g.Slice(row, from, to)
}

// normalizeRegion pads every fragment with spaces to the widest one and joins
// them, recreating the fixed stride the client wrapped messages at.
func normalizeRegion(f fragments) region {
	width := 0
	for _, line := range f.lines {
		width = max(width, len(line))
	}
	r := region{key: f.key, width: width, rows: len(f.lines)}
	if width == 0 {
		return r
	}
	r.text = make([]rune, 0, width*len(f.lines))
	for _, line := range f.lines {
		r.text = append(r.text, line...)
		for range width - len(line) {
			r.text = append(r.text, ' ')
		}
	}
	return r
}

// rowOf splits a local offset into a row and a column inside that row.
func (r region) rowOf(local int) (row, col int) {
	return local / r.width, local % r.width
}

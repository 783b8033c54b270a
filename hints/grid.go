package hints

import (
	"slices"
	"strings"
)

// Grid is a rectangular, row/column addressable view of a terminal snapshot.
// Rows are split on '\n' and indexed by rune; the column count comes from the
// first row unless overridden.
type Grid struct {
	rows [][]rune
	cols int
}

// LoadGrid splits text into rows. cols <= 0 means "length of the first row".
// A trailing line break does not produce an extra empty row.
func LoadGrid(text string, cols int) *Grid {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &Grid{}
	}
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	if cols <= 0 {
		cols = len(rows[0])
	}
	return &Grid{rows: rows, cols: cols}
}

func (g *Grid) Rows() int { return len(g.rows) }
func (g *Grid) Cols() int { return g.cols }

// At returns the rune at row/col, or false when either is out of range.
func (g *Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return 0, false
	}
	return g.rows[row][col], true
}

// Slice returns row[from:to] clamped to the row's bounds.
func (g *Grid) Slice(row, from, to int) []rune {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	line := g.rows[row]
	from = max(from, 0)
	to = min(to, len(line))
	if from >= to {
		return nil
	}
	return line[from:to]
}

// GlobalOffset converts a grid position into a rune offset in the raw buffer,
// assuming every row occupies cols runes plus one line break.
func GlobalOffset(row, col, cols int) int {
	return row*(cols+1) + col
}

// Separators returns the strictly increasing boundary columns of a row: every
// column holding sep, plus the synthetic boundaries 0 and Cols. Glyphs at or
// past Cols are ignored.
func (g *Grid) Separators(row int, sep rune) []int {
	bounds := []int{0}
	for col, r := range g.Slice(row, 1, g.cols) {
		if r == sep {
			bounds = append(bounds, col+1)
		}
	}
	if g.cols > 0 {
		bounds = append(bounds, g.cols)
	}
	return bounds
}

// locateSeparators runs Separators over every row.
func locateSeparators(g *Grid, sep rune) [][]int {
	out := make([][]int, g.Rows())
	for row := range out {
		out[row] = g.Separators(row, sep)
	}
	return out
}

// leadingSkip counts the spaces, at most limit, starting at col.
func leadingSkip(g *Grid, row, col, limit int) int {
	n := 0
	for n < limit {
		r, ok := g.At(row, col+n)
		if !ok || r != ' ' {
			break
		}
		n++
	}
	return n
}

// trailingSkip counts the spaces, at most limit, ending at col and going left.
func trailingSkip(g *Grid, row, col, limit int) int {
	n := 0
	for n < limit {
		r, ok := g.At(row, col-n)
		if !ok || r != ' ' {
			break
		}
		n++
	}
	return n
}

// ordinal reports how many separator glyphs precede col on a row, or -1 when
// col is not one of the row's boundaries.
func ordinal(bounds []int, col int) int {
	i, ok := slices.BinarySearch(bounds, col)
	if !ok {
		return -1
	}
	return i
}

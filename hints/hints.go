// Package hints recovers URLs and their exact positions from a text snapshot
// of a terminal chat client screen.
//
// The screen is a fixed-width grid split by a separator glyph into side by
// side regions (buffer list, chat, nicklist), with long messages soft-wrapped
// inside their region. Find rebuilds each region's logical text, matches URLs
// in it, and maps every match back to rune offsets in the input snapshot.
// The geometry rules follow WeeChat's layout.
package hints

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// DefaultSeparator is WeeChat's default weechat.look.separator_vertical and
// weechat.look.prefix_suffix.
const DefaultSeparator = '│'

// Options describes the client's layout. The zero value is usable but has
// both skip counts set to 0; start from DefaultOptions instead.
type Options struct {
	// Separator is the vertical separator glyph. Zero means DefaultSeparator.
	Separator rune
	// Columns overrides the row width. Zero means the first row's length.
	Columns int
	// SeparatorSkip is the number of separator crossings, counting the row
	// start, before message text. Zero or less treats every region as one
	// that may wrap.
	SeparatorSkip int
	// SuffixSkip is the number of spaces the client prints after a separator.
	SuffixSkip int
	// Debug, when set, receives a trace of the extraction.
	Debug io.Writer
}

// DefaultOptions matches a default WeeChat layout with a buffer list.
func DefaultOptions() Options {
	return Options{
		Separator:     DefaultSeparator,
		SeparatorSkip: 3,
		SuffixSkip:    1,
	}
}

// Span is a half-open range of rune offsets in the snapshot.
type Span struct {
	Start int
	End   int
}

// Hint is a URL found in the snapshot. Start and End delimit it in the raw
// text (End exclusive); for a wrapped URL the range also covers the chrome
// between its rows, and Spans lists the per-row pieces that hold the URL.
type Hint struct {
	Start int
	End   int
	URL   string
	Spans []Span
}

// Find returns the URLs in text sorted by Start. Malformed input yields no
// hints rather than an error.
func Find(text string, opts Options) []Hint {
	if opts.Separator == 0 {
		opts.Separator = DefaultSeparator
	}
	g := LoadGrid(text, opts.Columns)
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil
	}
	raw := []rune(text)

	bounds := locateSeparators(g, opts.Separator)
	var out []Hint
	for _, f := range segmentRegions(g, bounds, opts.SuffixSkip) {
		r := normalizeRegion(f)
		if r.width == 0 {
			continue
		}
		debugf(opts.Debug, "region %d-%d width=%d rows=%d", r.key.Start, r.key.End, r.width, r.rows)
		for _, m := range matchURLs(r.text) {
			if h, ok := buildHint(g, bounds, r, m, raw, opts); ok {
				out = append(out, h)
			}
		}
	}
	return normalizeHints(out, opts.Debug)
}

// buildHint runs one raw match through continuation resolution, boundary
// trimming and offset mapping.
func buildHint(g *Grid, bounds [][]int, r region, m match, raw []rune, opts Options) (Hint, bool) {
	debugf(opts.Debug, "  match [%d,%d) %q", m.start, m.end, string(r.text[m.start:m.end]))

	resolved := resolveContinuation(g, bounds, r, m, opts.SeparatorSkip)
	if resolved.end != m.end {
		debugf(opts.Debug, "  new message at local %d, truncated", resolved.end)
	}
	m = resolved

	url := r.text[m.start:m.end]
	m.end = m.start + trimURL(leftContext(r.text, m.start), url)
	url = url[:m.end-m.start]

	h := Hint{
		Start: mapStart(g, r, m.start, opts.SuffixSkip),
		End:   mapEnd(g, r, m.end, opts.SuffixSkip),
		URL:   string(url),
		Spans: mapSpans(g, r, m, opts.SuffixSkip),
	}
	if !consistent(raw, h, url) {
		debugf(opts.Debug, "  dropped [%d,%d): snapshot does not match %q", h.Start, h.End, h.URL)
		return Hint{}, false
	}
	return h, true
}

// contentCol is the raw column of the first character of the region's text on
// row, mirroring the chrome skipped by fragment.
func contentCol(g *Grid, r region, row, suffixSkip int) int {
	return r.key.Start + 1 + leadingSkip(g, row, r.key.Start+1, suffixSkip)
}

func mapStart(g *Grid, r region, local, suffixSkip int) int {
	row, col := r.rowOf(local)
	return GlobalOffset(row, contentCol(g, r, row, suffixSkip)+col, g.Cols())
}

// mapEnd maps an exclusive local end. An end on a row boundary belongs to the
// row before it.
func mapEnd(g *Grid, r region, local, suffixSkip int) int {
	row, col := r.rowOf(local)
	if col == 0 && row > 0 {
		row, col = row-1, r.width
	}
	return GlobalOffset(row, contentCol(g, r, row, suffixSkip)+col, g.Cols())
}

func mapSpans(g *Grid, r region, m match, suffixSkip int) []Span {
	var spans []Span
	for local := m.start; local < m.end; {
		row, _ := r.rowOf(local)
		rowEnd := min(m.end, (row+1)*r.width)
		spans = append(spans, Span{
			Start: mapStart(g, r, local, suffixSkip),
			End:   mapEnd(g, r, rowEnd, suffixSkip),
		})
		local = rowEnd
	}
	return spans
}

// consistent checks that the mapped span really holds the URL in the
// snapshot; the geometry is heuristic, so a mismatch means no hint.
func consistent(raw []rune, h Hint, url []rune) bool {
	if len(url) == 0 || h.Start < 0 || h.End > len(raw) || h.Start >= h.End {
		return false
	}
	for _, s := range h.Spans {
		if s.Start < 0 || s.End > len(raw) || s.Start >= s.End {
			return false
		}
	}
	return raw[h.Start] == url[0] && raw[h.End-1] == url[len(url)-1]
}

// normalizeHints sorts hints and drops any that overlap an earlier one.
func normalizeHints(hs []Hint, debug io.Writer) []Hint {
	slices.SortFunc(hs, func(a, b Hint) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End), cmp.Compare(a.URL, b.URL))
	})
	out := hs[:0]
	for _, h := range hs {
		if len(out) > 0 && h.Start < out[len(out)-1].End {
			debugf(debug, "dropped [%d,%d) %q: overlaps previous hint", h.Start, h.End, h.URL)
			continue
		}
		out = append(out, h)
	}
	return out
}

func debugf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

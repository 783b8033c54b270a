package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mash/gridhints/hints"
)

// annotator wraps snapshot text in OSC 8 hyperlinks.
type annotator struct {
	terminator string // "st" (default, ESC \) or "bel" (0x07)
}

func (a annotator) st() string {
	if a.terminator == "bel" {
		return "\x07"
	}
	return "\x1b\\"
}

func (a annotator) link(url, display string) string {
	if a.terminator == "bel" {
		return ansi.SetHyperlink(url) + display + ansi.ResetHyperlink()
	}
	var buf strings.Builder
	buf.WriteString("\x1b]8;;")
	buf.WriteString(url)
	buf.WriteString(a.st())
	buf.WriteString(display)
	buf.WriteString("\x1b]8;;")
	buf.WriteString(a.st())
	return buf.String()
}

// annotate returns text with each span of every hint linked to the hint's
// full URL. hs must be sorted and non-overlapping, as hints.Find returns it.
func (a annotator) annotate(text string, hs []hints.Hint) string {
	raw := []rune(text)
	var buf strings.Builder
	pos := 0
	for _, h := range hs {
		for _, s := range h.Spans {
			if s.Start < pos || s.End > len(raw) {
				continue
			}
			buf.WriteString(string(raw[pos:s.Start]))
			buf.WriteString(a.link(h.URL, string(raw[s.Start:s.End])))
			pos = s.End
		}
	}
	buf.WriteString(string(raw[pos:]))
	return buf.String()
}

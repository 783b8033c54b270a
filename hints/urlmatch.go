package hints

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Schemes are the URL schemes a hint may start with.
var Schemes = []string{
	"http",
	"https",
	"file",
	"ftp",
	"gemini",
	"irc",
	"gopher",
	"mailto",
	"news",
	"git",
}

// urlDelimiters is the character class kitty's hints kitten stops URLs at:
// whitespace, controls, bidi/format characters, private use and
// noncharacters. It must stay identical to kitty's for hints to agree.
const urlDelimiters = `\x00-\x09\x0b-\x20\x7f-\x{a0}\x{ad}` +
	`\x{600}-\x{605}\x{61c}\x{6dd}\x{70f}\x{8e2}\x{1680}\x{180e}` +
	`\x{2000}-\x{200f}\x{2028}-\x{202f}\x{205f}-\x{2064}\x{2066}-\x{206f}` +
	`\x{3000}\x{d800}-\x{f8ff}\x{feff}\x{fff9}-\x{fffb}` +
	`\x{110bd}\x{110cd}\x{13430}-\x{13438}\x{1bca0}-\x{1bca3}\x{1d173}-\x{1d17a}` +
	`\x{e0001}\x{e0020}-\x{e007f}\x{f0000}-\x{ffffd}\x{100000}-\x{10fffd}`

var urlPattern = regexp.MustCompile(`(?:` + strings.Join(Schemes, "|") + `)://[^` + urlDelimiters + `]{3,}`)

// match is a URL candidate in a region's logical text, in runes.
type match struct {
	start int
	end   int
}

// matchURLs finds every URL candidate in text, left to right and
// non-overlapping.
func matchURLs(text []rune) []match {
	s := string(text)
	locs := urlPattern.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}

	out := make([]match, 0, len(locs))
	byteOff, runeOff := 0, 0
	toRune := func(b int) int {
		runeOff += utf8.RuneCountInString(s[byteOff:b])
		byteOff = b
		return runeOff
	}
	for _, loc := range locs {
		start := toRune(loc[0])
		end := toRune(loc[1])
		out = append(out, match{start: start, end: end})
	}
	return out
}

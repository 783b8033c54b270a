package hints

import (
	"slices"
	"strings"
)

// ContextChars is how many characters before a URL the postprocessor may
// look at.
const ContextChars = 5

var closingBrackets = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'<':  '>',
	'*':  '*',
	'"':  '"',
	'\'': '\'',
}

// leftContext returns the ContextChars characters before start, padded on the
// left with spaces when the text begins earlier.
func leftContext(text []rune, start int) []rune {
	ctx := make([]rune, 0, ContextChars)
	for i := start - ContextChars; i < start; i++ {
		if i < 0 || i >= len(text) {
			ctx = append(ctx, ' ')
			continue
		}
		ctx = append(ctx, text[i])
	}
	return ctx
}

// trimURL applies the boundary rules to url given the characters preceding it
// and returns the length to keep. It never grows the URL.
func trimURL(ctx, url []rune) int {
	n := len(url)

	// asciidoc: link:https://example.com[Text]
	if string(ctx) == "link:" {
		if i := slices.Index(url, '['); i > 0 {
			n = i
		}
	}

	for n > 1 && strings.ContainsRune(".,?!", url[n-1]) {
		n--
	}

	if len(ctx) > 0 {
		if closer, ok := closingBrackets[ctx[len(ctx)-1]]; ok {
			if i := slices.Index(url[:n], closer); i > 0 {
				n = i
			}
		}
	}

	// reStructuredText: `https://example.com`_
	if n >= 2 && url[n-2] == '`' && url[n-1] == '_' {
		n -= 2
	}
	return n
}

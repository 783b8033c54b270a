package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mash/gridhints/hints"
	"github.com/mattn/go-runewidth"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0AF68"))
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// labels returns n labels of equal length drawn from alphabet, in order.
func labels(n int, alphabet string) []string {
	chars := []rune(alphabet)
	if n <= 0 || len(chars) < 2 {
		return nil
	}
	size := 1
	for total := len(chars); total < n; total *= len(chars) {
		size++
	}

	out := make([]string, n)
	label := make([]rune, size)
	for i := range n {
		v := i
		for pos := size - 1; pos >= 0; pos-- {
			label[pos] = chars[v%len(chars)]
			v /= len(chars)
		}
		out[i] = string(label)
	}
	return out
}

type picker struct {
	hints  []hints.Hint
	labels []string
}

func newPicker(hs []hints.Hint, alphabet string) *picker {
	return &picker{hints: hs, labels: labels(len(hs), alphabet)}
}

// render draws one line per hint, truncating URLs to width columns. Lines end
// in CRLF since the tty is in raw mode.
func (p *picker) render(w io.Writer, width int) error {
	for i, h := range p.hints {
		label := p.labels[i]
		room := width - runewidth.StringWidth(label) - 1
		url := h.URL
		if room > 0 {
			url = runewidth.Truncate(url, room, "...")
		}
		if _, err := fmt.Fprintf(w, "%s %s\r\n", labelStyle.Render(label), urlStyle.Render(url)); err != nil {
			return err
		}
	}
	return nil
}

// choose reads keys until the typed characters name exactly one label. Esc
// and Ctrl-C cancel; backspace erases; Enter takes the first label matching
// what has been typed so far.
func (p *picker) choose(r io.Reader) (hints.Hint, error) {
	reader := bufio.NewReader(r)
	var typed []rune
	for {
		key, _, err := reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return hints.Hint{}, errCanceled
			}
			return hints.Hint{}, fmt.Errorf("reading key: %w", err)
		}

		switch key {
		case 0x1b, 0x03:
			return hints.Hint{}, errCanceled
		case 0x7f, 0x08:
			if len(typed) > 0 {
				typed = typed[:len(typed)-1]
			}
			continue
		case '\r', '\n':
			if i := p.first(string(typed)); i >= 0 {
				return p.hints[i], nil
			}
			continue
		}

		prefix := string(append(typed, key))
		if p.first(prefix) < 0 {
			continue
		}
		typed = append(typed, key)
		for i, l := range p.labels {
			if l == prefix {
				return p.hints[i], nil
			}
		}
	}
}

func (p *picker) first(prefix string) int {
	for i, l := range p.labels {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	return -1
}

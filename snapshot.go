package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

var errNoSnapshot = errors.New("no snapshot: pass a file or pipe one on stdin")

// readSnapshot returns the cleaned snapshot from the file named in args, or
// from stdin when it is not a terminal.
func readSnapshot(args []string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading snapshot: %w", err)
		}
		return cleanSnapshot(string(data)), nil
	}
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return "", errNoSnapshot
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading snapshot from stdin: %w", err)
	}
	return cleanSnapshot(string(data)), nil
}

// cleanSnapshot drops escape sequences left by colored captures and CR line
// endings. Hint offsets refer to the cleaned text.
func cleanSnapshot(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return ansi.Strip(s)
}

package main

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardWriteAll = clipboard.WriteAll

// openerCommand returns the command that opens a URL: the configured opener,
// or the platform default.
func openerCommand(opener string) (string, []string) {
	if fields := strings.Fields(opener); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	if runtime.GOOS == "darwin" {
		return "open", nil
	}
	return "xdg-open", nil
}

// openURL starts the opener without waiting for it to exit.
func openURL(opener, url string) error {
	name, args := openerCommand(opener)
	cmd := exec.Command(name, append(args, url)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// act performs the configured action on the chosen URL.
func act(cfg Config, out io.Writer, url string) error {
	switch cfg.Action {
	case "open":
		return openURL(cfg.Opener, url)
	case "copy":
		if err := clipboardWriteAll(url); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintln(out, url)
		return err
	}
}

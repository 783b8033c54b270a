package main

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpenerCommand(t *testing.T) {
	name, args := openerCommand("firefox --new-tab")
	if name != "firefox" || !cmp.Equal(args, []string{"--new-tab"}) {
		t.Errorf("openerCommand() = %q %q", name, args)
	}

	name, _ = openerCommand("  ")
	want := "xdg-open"
	if runtime.GOOS == "darwin" {
		want = "open"
	}
	if name != want {
		t.Errorf("openerCommand(default) = %q, want %q", name, want)
	}
}

func TestAct(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	cfg := defaultConfig()

	cfg.Action = "print"
	var out strings.Builder
	if err := act(cfg, &out, "https://a.b/c"); err != nil {
		t.Fatalf("act(print) error = %v", err)
	}
	if out.String() != "https://a.b/c\n" {
		t.Errorf("act(print) wrote %q", out.String())
	}

	cfg.Action = "copy"
	if err := act(cfg, &out, "https://d.e/f"); err != nil {
		t.Fatalf("act(copy) error = %v", err)
	}
	if copied != "https://d.e/f" {
		t.Errorf("clipboard got %q", copied)
	}

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	if err := act(cfg, &out, "https://d.e/f"); err == nil || !strings.Contains(err.Error(), "copying to clipboard") {
		t.Errorf("act(copy) error = %v, want wrapped clipboard error", err)
	}

	cfg.Action = "open"
	cfg.Opener = "gridhints-test-no-such-opener"
	if err := act(cfg, &out, "https://g.h/i"); err == nil {
		t.Error("act(open) with a missing opener returned nil error")
	}
}

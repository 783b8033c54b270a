package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanSnapshot(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "a │ b\n", "a │ b\n"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"sgr", "\x1b[1;32malice\x1b[0m │ https://x.y/z\n", "alice │ https://x.y/z\n"},
		{"existing hyperlink", "\x1b]8;;https://a.b\x07https://a.b\x1b]8;;\x07\n", "https://a.b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanSnapshot(tt.in); got != tt.want {
				t.Errorf("cleanSnapshot(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadSnapshot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.txt")
	if err := os.WriteFile(path, []byte("\x1b[31mhi\x1b[0m\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readSnapshot([]string{path}, nil)
	if err != nil {
		t.Fatalf("readSnapshot() error = %v", err)
	}
	if got != "hi\n" {
		t.Errorf("readSnapshot() = %q, want %q", got, "hi\n")
	}

	_, err = readSnapshot([]string{path + ".missing"}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readSnapshot(missing) error = %v, want not exist", err)
	}
}

func TestReadSnapshot_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close() //nolint:errcheck

	go func() {
		_, _ = w.WriteString(" see https://example.com/x\n")
		_ = w.Close()
	}()

	got, err := readSnapshot(nil, r)
	if err != nil {
		t.Fatalf("readSnapshot() error = %v", err)
	}
	if got != " see https://example.com/x\n" {
		t.Errorf("readSnapshot() = %q", got)
	}
}

func TestReadSnapshot_NoInput(t *testing.T) {
	if _, err := readSnapshot(nil, nil); !errors.Is(err, errNoSnapshot) {
		t.Errorf("readSnapshot() error = %v, want errNoSnapshot", err)
	}
}

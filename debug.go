package main

import (
	"fmt"
	"io"
	"os"
)

// openDebugLog creates the temp file that receives the extraction trace and
// announces its path on stderr.
func openDebugLog(stderr io.Writer) (*os.File, error) {
	f, err := os.CreateTemp("", "gridhints-debug-*.log")
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	_, _ = fmt.Fprintf(stderr, "gridhints: debug log: %s\n", f.Name())
	return f, nil
}

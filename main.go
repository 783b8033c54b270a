package main

import (
	"errors"
	"fmt"
	"os"
)

var errCanceled = errors.New("canceled")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCanceled) {
			os.Exit(130)
		}
		_, _ = fmt.Fprintf(os.Stderr, "gridhints: %v\n", err)
		os.Exit(1)
	}
}

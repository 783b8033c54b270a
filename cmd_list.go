package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "Print every url with its offsets",
	Long:  "Prints one line per url: start offset, end offset (exclusive) and the url, separated by tabs. Offsets count characters, not bytes.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	text, err := readSnapshot(args, os.Stdin)
	if err != nil {
		return err
	}
	return writeList(cmd.OutOrStdout(), hints.Find(text, s.opts))
}

func writeList(w io.Writer, hs []hints.Hint) error {
	for _, h := range hs {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n", h.Start, h.End, h.URL); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(annotateCmd)
}

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Print the snapshot with OSC 8 hyperlinks",
	Long:  "Writes the snapshot back with every url turned into an OSC 8 hyperlink. A url wrapped over several rows is linked on each of them.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		text, err := readSnapshot(args, os.Stdin)
		if err != nil {
			return err
		}
		a := annotator{terminator: s.cfg.Terminator}
		_, err = fmt.Fprint(cmd.OutOrStdout(), a.annotate(text, hints.Find(text, s.opts)))
		return err
	},
}

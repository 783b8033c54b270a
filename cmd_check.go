package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/mash/gridhints/fixture"
	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Run snapshot fixtures against the configured layout",
	Long: "Loads every *.test snapshot under dir together with its *.result file (one expected url per line), " +
		"extracts urls with the configured layout and reports each fixture as ok or FAIL.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		return runCheck(cmd.OutOrStdout(), args[0], s.opts)
	},
}

func runCheck(w io.Writer, root string, opts hints.Options) error {
	cases, err := fixture.Load(root)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no fixtures under %s", root)
	}

	failed := 0
	for _, c := range cases {
		if problem := checkCase(c, opts); problem != "" {
			failed++
			_, _ = fmt.Fprintf(w, "FAIL %s: %s\n", c.Name, problem)
			continue
		}
		_, _ = fmt.Fprintf(w, "ok   %s\n", c.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(cases))
	}
	return nil
}

// checkCase returns a description of what is wrong with the extraction of c,
// or "" when it matches.
func checkCase(c fixture.Case, opts hints.Options) string {
	hs := hints.Find(c.Input, opts)
	got := make([]string, len(hs))
	for i, h := range hs {
		got[i] = h.URL
	}
	if !slices.Equal(got, c.Want) {
		return fmt.Sprintf("got urls %q, want %q", got, c.Want)
	}

	raw := []rune(c.Input)
	for _, h := range hs {
		url := []rune(h.URL)
		if raw[h.Start] != url[0] || raw[h.End-1] != url[len(url)-1] {
			return fmt.Sprintf("snapshot at [%d,%d) does not start and end like %q", h.Start, h.End, h.URL)
		}
	}
	return ""
}

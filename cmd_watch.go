package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
)

const watchDelay = 100 * time.Millisecond

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Print the urls again whenever the snapshot file changes",
	Long:  "Lists the urls of the snapshot file, then again every time it is rewritten, until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		out := cmd.OutOrStdout()
		list := func() error {
			text, err := readSnapshot(args, nil)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if err := writeList(out, hints.Find(text, s.opts)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		}

		dw, err := newDumpWatcher(args[0])
		if err != nil {
			return err
		}
		if err := list(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return dw.run(ctx, watchDelay, list, func(err error) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "gridhints: watch: %v\n", err)
		})
	},
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/creack/pty"
	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const fallbackWidth = 80

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Choose a url by its label and open, copy or print it",
	Long: "Lists the urls on the terminal, each with a short label. Typing a label picks that url, " +
		"which is then opened, copied to the clipboard or printed depending on the configured action. " +
		"Esc or Ctrl-C cancels.",
	Args: cobra.MaximumNArgs(1),
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
		hs := hints.Find(text, s.opts)
		if len(hs) == 0 {
			return errors.New("no urls in snapshot")
		}

		h, err := pickOnTTY(newPicker(hs, s.cfg.Alphabet))
		if err != nil {
			return err
		}
		return act(s.cfg, cmd.OutOrStdout(), h.URL)
	},
}

// pickOnTTY runs the picker on the controlling terminal, so the snapshot can
// still arrive on stdin.
func pickOnTTY(p *picker) (hints.Hint, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return hints.Hint{}, fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close() //nolint:errcheck

	width := fallbackWidth
	if _, cols, err := pty.Getsize(tty); err == nil && cols > 0 {
		width = cols
	}

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return hints.Hint{}, fmt.Errorf("make raw terminal: %w", err)
	}
	defer func() {
		_ = term.Restore(int(tty.Fd()), oldState)
	}()

	if err := p.render(tty, width); err != nil {
		return hints.Hint{}, err
	}
	return p.choose(tty)
}

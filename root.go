package main

import (
	"fmt"
	"os"

	"github.com/mash/gridhints/hints"
	"github.com/spf13/cobra"
)

var (
	configFlag        string
	separatorFlag     string
	colsFlag          int
	separatorSkipFlag int
	suffixSkipFlag    int
	debugFlag         bool
	terminatorFlag    string
	actionFlag        string
	openerFlag        string
	alphabetFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "gridhints [file]",
	Short: "Find URLs in a terminal chat client screen dump",
	Long: "gridhints reads a snapshot of a WeeChat screen, rebuilds messages that the client " +
		"wrapped inside its chat area, and reports every URL with its offsets in the snapshot.",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runList,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "config file (default $"+configEnv+" or <config dir>/gridhints/config.yaml)")
	pf.StringVar(&separatorFlag, "separator", "", "vertical separator glyph")
	pf.IntVar(&colsFlag, "cols", 0, "screen width in columns (0: length of the first row)")
	pf.IntVar(&separatorSkipFlag, "separator-skip", 0, "separator crossings before message text, counting the row start (0: every region wraps)")
	pf.IntVar(&suffixSkipFlag, "suffix-skip", 0, "spaces the client prints after a separator")
	pf.BoolVar(&debugFlag, "debug", false, "write an extraction trace to a temp file")
	pf.StringVar(&terminatorFlag, "terminator", "", "OSC 8 terminator for annotate: st or bel")
	pf.StringVar(&actionFlag, "action", "", "what pick does with the chosen url: open, copy or print")
	pf.StringVar(&openerFlag, "opener", "", "command used to open urls")
	pf.StringVar(&alphabetFlag, "alphabet", "", "label characters for pick")
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	path, explicit, err := configPath(configFlag)
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		cfg.Separator = separatorFlag
	}
	if flags.Changed("cols") {
		cfg.Columns = colsFlag
	}
	if flags.Changed("separator-skip") {
		cfg.SeparatorSkip = separatorSkipFlag
	}
	if flags.Changed("suffix-skip") {
		cfg.SuffixSkip = suffixSkipFlag
	}
	if flags.Changed("terminator") {
		cfg.Terminator = terminatorFlag
	}
	if flags.Changed("action") {
		cfg.Action = actionFlag
	}
	if flags.Changed("opener") {
		cfg.Opener = openerFlag
	}
	if flags.Changed("alphabet") {
		cfg.Alphabet = alphabetFlag
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// session holds what every command needs: the resolved configuration, the
// extraction options and the debug log, if any.
type session struct {
	cfg   Config
	opts  hints.Options
	debug *os.File
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, opts: cfg.options()}
	if debugFlag {
		f, err := openDebugLog(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		s.debug = f
		s.opts.Debug = f
	}
	return s, nil
}

func (s *session) Close() error {
	if s.debug == nil {
		return nil
	}
	return s.debug.Close()
}

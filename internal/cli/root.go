// Package cli implements the morose command-line interface.
//
// The command joins its input arguments with single spaces and converts the
// result to Morse code (the default, or with --to) or from Morse code
// (with --from).
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/morose"
	"github.com/spf13/cobra"
)

// Version of the morose command.
const Version = "0.2.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

const afterHelp = `
A note on conversions from Morse:
Morose tries to be liberal in what it accepts. It will ignore characters that are not in the set [.-/ ].
`

// ErrDirection flags an invalid conversion direction in the configuration.
var ErrDirection = errors.New("direction must be 'to' or 'from'")

// rootFlags holds the flag values of one command instance.
type rootFlags struct {
	to         bool
	from       bool
	configFile string
}

// NewRootCmd creates the morose command.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	var settings *config
	root := &cobra.Command{
		Use:     "morose [flags] [INPUT...]",
		Short:   "Convert text to Morse code and back",
		Long:    "Morose converts the text given as arguments to Morse code, or Morse code to text.",
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Conversion itself cannot fail; errors are about flags and configuration.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := setupTracing(cfg.trace); err != nil {
				return err
			}
			settings = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			encode, err := direction(flags, settings)
			if err != nil {
				return err
			}
			input := strings.Join(args, " ")
			var result string
			if encode {
				result = morose.Encode(input)
			} else {
				result = morose.Decode(input)
			}
			if result != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
	root.SetHelpTemplate(root.HelpTemplate() + afterHelp)
	root.Flags().BoolVarP(&flags.to, "to", "t", false, "Convert to Morse code (conflicts with --from).")
	root.Flags().BoolVarP(&flags.from, "from", "f", false, "Convert from Morse code (conflicts with --to).")
	root.Flags().StringVar(&flags.configFile, "config", "", "config file (YAML)")
	root.MarkFlagsMutuallyExclusive("to", "from")
	// everything after the first input word is input
	root.Flags().SetInterspersed(false)
	return root
}

// direction returns true for encoding. Flags take precedence over the
// configured default.
func direction(flags rootFlags, cfg *config) (bool, error) {
	switch {
	case flags.from:
		return false, nil
	case flags.to:
		return true, nil
	}
	switch cfg.direction {
	case directionTo:
		return true, nil
	case directionFrom:
		return false, nil
	}
	return false, fmt.Errorf("%w, is %q", ErrDirection, cfg.direction)
}

// Execute runs the morose command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "morose:", err)
		return exitUserError
	}
	return exitSuccess
}

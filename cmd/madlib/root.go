// Root command for the madlib CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/storyforge/madlib/pkg/types"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitUsage    = 1  // wrong argument count
	exitNotFound = 2  // a given path cannot be opened
	exitParse    = 3  // dictionary fails to parse
	exitOther    = 10 // anything else
)

// errUsage marks argument-count failures so Execute can map them to
// exitUsage.
var errUsage = errors.New("invalid argument count")

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "madlib <dictionary> <template> <output>",
	Short: "Generate mad-lib stories from a word dictionary and a template",
	Long: `Madlib reads a JSON dictionary of words tagged by type, scans a template
for bracketed type tokens like [noun], and writes the template to the output
file with every token replaced by a random word of that type.`,
	Args:              exactArgs(3),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.madlib.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bankCmd)
}

// exactArgs validates the positional argument count, marking failures
// with errUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d argument(s), got %d",
				errUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// exitCodeFor maps an error from Execute to the process exit code.
func exitCodeFor(err error) int {
	var parseErr *types.ParseError
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return exitNotFound
	case errors.As(err, &parseErr):
		return exitParse
	default:
		return exitOther
	}
}

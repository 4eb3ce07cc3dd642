// Bank command group for the madlib CLI.
package main

import (
	"github.com/spf13/cobra"
)

// flagBankPath is set by the --bank flag on bank subcommands.
var flagBankPath string

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the persistent word bank",
	Long: `The word bank stores dictionary entries in a SQLite database so stories
can be generated without re-parsing the source JSON each run.`,
}

func init() {
	bankCmd.PersistentFlags().StringVar(&flagBankPath, "bank", "", "word bank database (default: ./madlib.db)")

	bankCmd.AddCommand(bankImportCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankTellCmd)
}

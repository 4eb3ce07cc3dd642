// Bank import command: load a JSON dictionary into the word bank.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyforge/madlib/internal/dictionary"
)

var bankImportCmd = &cobra.Command{
	Use:   "import <dictionary>",
	Short: "Import a JSON dictionary into the word bank",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := dictionary.LoadEntries(args[0])
		if err != nil {
			return fmt.Errorf("load dictionary: %w", err)
		}

		backend, err := attachBank()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.ImportEntries(entries)
		if err != nil {
			return fmt.Errorf("import entries: %w", err)
		}

		fmt.Printf("Imported %d word(s) into %s\n", n, backend.Path())
		return nil
	},
}

// Bank tell command: generate a story using the word bank as dictionary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyforge/madlib/internal/story"
)

var bankTellCmd = &cobra.Command{
	Use:   "tell <template> <output>",
	Short: "Generate a story using words from the bank",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBank()
		if err != nil {
			return err
		}
		defer backend.Detach()

		dict, err := backend.Dictionary()
		if err != nil {
			return fmt.Errorf("load bank dictionary: %w", err)
		}

		engine := story.NewEngine(dict, engineOptions())
		return writeStory(engine, args[0], args[1])
	},
}

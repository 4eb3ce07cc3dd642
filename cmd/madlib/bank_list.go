// Bank list command: show per-type word counts.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List word types and counts in the bank",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBank()
		if err != nil {
			return err
		}
		defer backend.Detach()

		counts, err := backend.Types()
		if err != nil {
			return fmt.Errorf("list types: %w", err)
		}

		if flagJSON {
			out, err := json.MarshalIndent(counts, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal types: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(counts) == 0 {
			fmt.Println("Bank is empty")
			return nil
		}
		for _, tc := range counts {
			fmt.Printf("%s\t%d\n", tc.Type, tc.Count)
		}
		return nil
	},
}

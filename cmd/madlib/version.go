// Version command for the madlib CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyforge/madlib/pkg/madlib"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the madlib version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("madlib", madlib.Version)
	},
}

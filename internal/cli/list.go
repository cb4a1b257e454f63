// internal/cli/list.go
package deckhand

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing local resources",
	Long:  "The 'list' command groups related subcommands that enumerate local resources. It performs no action on its own.",
}

func init() {
	rootCmd.AddCommand(listCmd)
}

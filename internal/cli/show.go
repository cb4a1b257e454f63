// internal/cli/show.go
package deckhand

import "github.com/spf13/cobra"

// showCmd represents the 'show' command group for displaying local
// state: saved decks and the effective configuration.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for showing local information",
	Long:  "The 'show' command groups related subcommands that display saved decks or configuration. It performs no action on its own.",
}

func init() {
	rootCmd.AddCommand(showCmd)
}

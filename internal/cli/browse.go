// internal/cli/browse.go
package deckhand

import (
	"github.com/mwiater/deckhand/cli"
	"github.com/spf13/cobra"
)

// browseCmd implements 'browse', which opens the interactive
// recommendation browser for a saved deck's commander.
var browseCmd = &cobra.Command{
	Use:   "browse <deck>",
	Short: "Browse EDHREC recommendations interactively",
	Long:  "The 'browse' command loads a saved deck and opens an interactive browser over every EDHREC recommendation category for its commander, marking cards already in the deck.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		deck, err := loadDeck(cfg, args[0])
		if err != nil {
			return err
		}
		return cli.Run(cfg, newEngine(cfg), deck)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// internal/cli/suggest.go
package deckhand

import (
	"fmt"
	"os"

	"github.com/mwiater/deckhand/internal/recommend"
	"github.com/spf13/cobra"
)

// suggestCmd implements 'suggest', which proposes additions for a saved
// deck: high-synergy cards across every EDHREC category that the deck
// does not already run.
var suggestCmd = &cobra.Command{
	Use:   "suggest <deck>",
	Short: "Suggest additions for a saved deck",
	Long:  "The 'suggest' command loads a saved deck and proposes cards to add, drawn from every EDHREC recommendation category for its commander and excluding cards already in the deck.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		deck, err := loadDeck(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Loaded deck: %s\n", deck)

		suggestions, err := newEngine(cfg).SuggestAdditions(deck, cfg.SuggestCount())
		if err != nil {
			return err
		}

		if JSONModeEnabled() {
			return printJSON(suggestions)
		}
		recommend.PrintRecommendations(os.Stdout, suggestions, fmt.Sprintf("Suggested additions for %s", deck.Name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

// internal/cli/recommend.go
package deckhand

import (
	"fmt"
	"os"

	"github.com/mwiater/deckhand/internal/recommend"
	"github.com/spf13/cobra"
)

// recommendCmd implements 'recommend', which lists EDHREC card
// recommendations for a commander, marking cards already in a deck.
var recommendCmd = &cobra.Command{
	Use:   "recommend [commander]",
	Short: "Show EDHREC recommendations for a commander",
	Long:  "The 'recommend' command fetches high-synergy card recommendations for a commander, either named directly or taken from a saved deck via --deck. With --top the list is ordered by inclusion rate instead of synergy.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		commander, deck, err := commanderFor(cfg, args, recommendDeckName)
		if err != nil {
			return err
		}

		engine := newEngine(cfg)
		var recs []recommend.Recommendation
		title := fmt.Sprintf("High synergy cards for %s", commander)
		if recommendTop {
			recs, err = engine.TopCards(commander, deck, cfg.RecommendCount())
			title = fmt.Sprintf("Top cards for %s", commander)
		} else {
			recs, err = engine.ForCommander(commander, deck, cfg.RecommendCount())
		}
		if err != nil {
			return err
		}

		if JSONModeEnabled() {
			return printJSON(recs)
		}
		recommend.PrintRecommendations(os.Stdout, recs, title)
		return nil
	},
}

var (
	recommendDeckName string
	recommendTop      bool
)

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVar(&recommendDeckName, "deck", "", "saved deck whose commander and cards to use")
	recommendCmd.Flags().BoolVar(&recommendTop, "top", false, "order by inclusion rate instead of synergy")
}

// internal/cli/guides.go
package deckhand

import (
	"fmt"
	"os"

	"github.com/mwiater/deckhand/internal/guides"
	"github.com/spf13/cobra"
)

// guidesCmd implements 'guides', which lists primers and guide
// resources for a commander.
var guidesCmd = &cobra.Command{
	Use:   "guides [commander]",
	Short: "Find primers and guides for a commander",
	Long:  "The 'guides' command lists primer and guide resources for a commander, either named directly or taken from a saved deck via --deck: the EDHREC deck tech article when one exists, the EDHREC commander page, and a Moxfield primer search.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		commander, _, err := commanderFor(cfg, args, guidesDeckName)
		if err != nil {
			return err
		}

		fmt.Printf("Searching for guides: %s\n", commander)
		fetcher := guides.NewFetcher(cfg.ArticleTimeout(), nil)
		fetcher.Debug = DebugEnabled()
		all := fetcher.AllGuides(commander)

		if JSONModeEnabled() {
			return printJSON(all)
		}
		guides.PrintGuides(os.Stdout, all)
		return nil
	},
}

var guidesDeckName string

func init() {
	rootCmd.AddCommand(guidesCmd)
	guidesCmd.Flags().StringVar(&guidesDeckName, "deck", "", "saved deck whose commander to use")
}

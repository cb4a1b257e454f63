// internal/cli/analyze.go
package deckhand

import (
	"fmt"
	"os"

	"github.com/mwiater/deckhand/internal/recommend"
	"github.com/spf13/cobra"
)

// analyzeCmd implements 'analyze', which scores a saved deck against
// EDHREC data and reports coverage, low-synergy cards, and off-theme
// cards. With --cuts it prints a prioritized cut list instead.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <deck>",
	Short: "Analyze a saved deck for potential cuts",
	Long:  "The 'analyze' command loads a saved deck, scores every mainboard card against EDHREC data for its commander, and reports EDHREC coverage plus low-synergy and off-theme cards. The --cuts flag prints a prioritized cut list.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		deck, err := loadDeck(cfg, args[0])
		if err != nil {
			return err
		}

		analyzer := newAnalyzer(cfg)

		if analyzeCuts {
			cuts, err := analyzer.SuggestCuts(deck, cfg.CutCount())
			if err != nil {
				return err
			}
			if JSONModeEnabled() {
				return printJSON(cuts)
			}
			fmt.Printf("Suggested cuts for %s:\n", deck.Name)
			recommend.PrintCuts(os.Stdout, cuts)
			return nil
		}

		analysis, err := analyzer.Analyze(deck)
		if err != nil {
			return err
		}
		if JSONModeEnabled() {
			return printJSON(analysis)
		}
		fmt.Printf("Analyzing: %s\n\n", deck)
		recommend.PrintAnalysis(os.Stdout, analysis)
		return nil
	},
}

var analyzeCuts bool

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeCuts, "cuts", false, "print a prioritized cut list")
}

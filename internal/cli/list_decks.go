// internal/cli/list_decks.go
package deckhand

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/deckhand/internal/decks"
	"github.com/spf13/cobra"
)

var (
	deckNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	deckErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// listDecksCmd implements 'list decks', which enumerates the saved deck
// directories with a one-line summary each.
var listDecksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List saved decks",
	Long:  "The 'decks' subcommand lists every saved deck in the decks directory along with its summary line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		names, err := decks.List(cfg.DecksDirPath())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Printf("No decks saved under %s/\n", cfg.DecksDirPath())
			return nil
		}

		if JSONModeEnabled() {
			return printJSON(names)
		}

		for _, name := range names {
			deck, err := loadDeck(cfg, name)
			if err != nil {
				fmt.Printf("%s %s\n", deckNameStyle.Render("- "+name), deckErrorStyle.Render(fmt.Sprintf("(unreadable: %v)", err)))
				continue
			}
			fmt.Printf("%s %s\n", deckNameStyle.Render("- "+name), deck.String())
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listDecksCmd)
}

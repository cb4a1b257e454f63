// internal/cli/show_deck.go
package deckhand

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var deckTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// showDeckCmd implements 'show deck', which loads a saved deck and
// prints its summary and deck list.
var showDeckCmd = &cobra.Command{
	Use:   "deck <name>",
	Short: "Show a saved deck",
	Long:  "The 'deck' subcommand loads a saved deck from the decks directory and prints its summary line and full deck list.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := loadDeck(getConfig(), args[0])
		if err != nil {
			return err
		}
		if JSONModeEnabled() {
			return printJSON(deck.Cards)
		}
		fmt.Println(deckTitleStyle.Render(deck.String()))
		fmt.Println()
		fmt.Print(deck.Decklist())
		return nil
	},
}

func init() {
	showCmd.AddCommand(showDeckCmd)
}

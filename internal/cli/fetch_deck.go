// internal/cli/fetch_deck.go
package deckhand

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/k0kubun/pp"
	"github.com/mwiater/deckhand/internal/decks"
	"github.com/mwiater/deckhand/internal/moxfield"
	"github.com/spf13/cobra"
)

// fetchDeckCmd implements 'fetch deck', which fetches a deck from
// Moxfield by ID or URL and saves it into the decks directory.
var fetchDeckCmd = &cobra.Command{
	Use:   "deck <id-or-url>",
	Short: "Fetch a deck from Moxfield and save it locally",
	Long:  "The 'deck' subcommand fetches a deck list from Moxfield by its ID or URL, prints a summary, and saves deck.json, cards.json, and decklist.txt under the decks directory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		id := moxfield.ParseID(args[0])
		name := fetchDeckName
		if name == "" {
			name = id
		}

		fmt.Printf("Fetching deck from Moxfield: %s\n", id)
		raw, err := newMoxfieldClient(cfg).GetDeck(id)
		if err != nil {
			return err
		}

		deck, err := decks.FromMoxfieldData(raw, id)
		if err != nil {
			return err
		}

		if DebugEnabled() {
			var payload map[string]any
			if err := json.Unmarshal(raw, &payload); err == nil {
				pp.Println(payload)
			}
		}

		fmt.Printf("Loaded: %s\n", deck)

		dir := filepath.Join(cfg.DecksDirPath(), name)
		if err := deck.Save(dir); err != nil {
			return err
		}
		fmt.Printf("Saved to: %s/\n", dir)
		return nil
	},
}

var fetchDeckName string

func init() {
	fetchCmd.AddCommand(fetchDeckCmd)
	fetchDeckCmd.Flags().StringVar(&fetchDeckName, "name", "", "directory name for the saved deck (defaults to the deck ID)")
}

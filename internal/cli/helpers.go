// internal/cli/helpers.go
package deckhand

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/deckhand/internal/appconfig"
	"github.com/mwiater/deckhand/internal/decks"
	"github.com/mwiater/deckhand/internal/edhrec"
	"github.com/mwiater/deckhand/internal/moxfield"
	"github.com/mwiater/deckhand/internal/recommend"
)

// newMoxfieldClient builds a Moxfield client from the loaded config.
func newMoxfieldClient(cfg *appconfig.Config) *moxfield.Client {
	client := moxfield.NewClient(cfg.MoxfieldBaseURL(), cfg.RequestTimeout(), nil)
	client.Debug = DebugEnabled()
	return client
}

// newEngine builds a recommendation engine from the loaded config.
func newEngine(cfg *appconfig.Config) *recommend.Engine {
	client := edhrec.NewClient(cfg.EdhrecBaseURL(), cfg.RequestTimeout(), nil)
	client.Debug = DebugEnabled()
	return recommend.NewEngine(client)
}

// newAnalyzer builds a deck analyzer from the loaded config.
func newAnalyzer(cfg *appconfig.Config) *recommend.Analyzer {
	return recommend.NewAnalyzer(newEngine(cfg), cfg.ExtraStaples)
}

// loadDeck loads a saved deck by name from the configured decks directory.
func loadDeck(cfg *appconfig.Config, name string) (*decks.Deck, error) {
	return decks.Load(filepath.Join(cfg.DecksDirPath(), name))
}

// commanderFor resolves a commander name from an optional positional
// argument or a --deck flag. When the deck flag is set, the deck is
// loaded and returned alongside its commander.
func commanderFor(cfg *appconfig.Config, args []string, deckName string) (string, *decks.Deck, error) {
	if deckName != "" {
		deck, err := loadDeck(cfg, deckName)
		if err != nil {
			return "", nil, err
		}
		commanders := deck.Commanders()
		if len(commanders) == 0 {
			return "", nil, recommend.ErrNoCommander
		}
		return commanders[0].Name, deck, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("provide a commander name or --deck")
	}
	return args[0], nil, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// internal/decks/persist.go
package decks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwiater/deckhand/internal/util"
)

// File names written into each deck directory.
const (
	rawFileName      = "deck.json"
	cardsFileName    = "cards.json"
	decklistFileName = "decklist.txt"
)

// Save writes the deck into dir: deck.json holds the raw Moxfield
// payload, cards.json the simplified card list, and decklist.txt a
// human-readable deck list grouped by board.
func (d *Deck) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create deck directory %q: %w", dir, err)
	}

	if len(d.raw) > 0 {
		var indented bytes.Buffer
		if err := json.Indent(&indented, d.raw, "", "  "); err != nil {
			return fmt.Errorf("could not format raw deck data: %w", err)
		}
		if err := util.WriteFile(filepath.Join(dir, rawFileName), indented.Bytes()); err != nil {
			return err
		}
	}

	cardsData, err := json.MarshalIndent(d.Cards, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode card list: %w", err)
	}
	if err := util.WriteFile(filepath.Join(dir, cardsFileName), cardsData); err != nil {
		return err
	}

	return util.WriteFile(filepath.Join(dir, decklistFileName), []byte(d.Decklist()))
}

// Load reads a previously saved deck from dir. The raw deck.json payload
// is re-mapped through the same board mapping used at fetch time, and
// cards.json (when present) is validated against the card list schema so
// hand-edited deck directories fail loudly.
func Load(dir string) (*Deck, error) {
	rawPath := filepath.Join(dir, rawFileName)
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", rawPath, err)
	}

	cardsPath := filepath.Join(dir, cardsFileName)
	if cardsData, err := os.ReadFile(cardsPath); err == nil {
		if err := ValidateCards(cardsData); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", cardsPath, err)
		}
	}

	deck, err := FromMoxfieldData(data, "")
	if err != nil {
		return nil, err
	}
	if deck.MoxfieldID == "" {
		deck.MoxfieldID = filepath.Base(dir)
	}
	return deck, nil
}

// List returns the names of deck directories under decksDir that contain
// a saved deck, sorted alphabetically. A missing decksDir yields an
// empty list.
func List(decksDir string) ([]string, error) {
	entries, err := os.ReadDir(decksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read decks directory %q: %w", decksDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(decksDir, entry.Name(), rawFileName)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Decklist renders the human-readable deck list: comment header lines,
// then one section per board in a sensible order with cards sorted by
// name.
func (d *Deck) Decklist() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", d.Name)
	fmt.Fprintf(&b, "# Format: %s\n", d.Format)
	if d.Description != "" {
		fmt.Fprintf(&b, "# %s\n", d.Description)
	}
	b.WriteString("\n")

	boards := make(map[string][]Card)
	for _, c := range d.Cards {
		boards[c.Board] = append(boards[c.Board], c)
	}

	writeBoard := func(name string) {
		cards := boards[name]
		if len(cards) == 0 {
			return
		}
		sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
		fmt.Fprintf(&b, "## %s\n", util.TitleCase(name))
		for _, c := range cards {
			fmt.Fprintf(&b, "%d %s\n", c.Quantity, c.Name)
		}
		b.WriteString("\n")
	}

	for _, name := range boardOrder {
		writeBoard(name)
	}

	var remaining []string
	for name := range boards {
		if !isOrderedBoard(name) {
			remaining = append(remaining, name)
		}
	}
	sort.Strings(remaining)
	for _, name := range remaining {
		writeBoard(name)
	}

	return b.String()
}

func isOrderedBoard(name string) bool {
	for _, ordered := range boardOrder {
		if name == ordered {
			return true
		}
	}
	return false
}

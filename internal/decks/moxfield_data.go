// internal/decks/moxfield_data.go
package decks

import (
	"encoding/json"
	"fmt"
	"sort"
)

// moxfieldPayload mirrors the fields of a Moxfield v3 deck response that
// the tool cares about. Everything else rides along in the raw bytes.
type moxfieldPayload struct {
	Name        string                   `json:"name"`
	Format      string                   `json:"format"`
	Description string                   `json:"description"`
	PublicID    string                   `json:"publicId"`
	Boards      map[string]moxfieldBoard `json:"boards"`
}

type moxfieldBoard struct {
	Cards map[string]moxfieldEntry `json:"cards"`
}

type moxfieldEntry struct {
	Quantity int          `json:"quantity"`
	Card     moxfieldCard `json:"card"`
}

type moxfieldCard struct {
	Name     string  `json:"name"`
	TypeLine string  `json:"type_line"`
	ManaCost string  `json:"mana_cost"`
	CMC      float64 `json:"cmc"`
}

// FromMoxfieldData builds a Deck from a raw Moxfield deck payload. The
// moxfieldID is recorded as-is; if empty, the payload's publicId is used.
// Cards are ordered deterministically: boards alphabetically, then card
// names alphabetically within each board.
func FromMoxfieldData(data []byte, moxfieldID string) (*Deck, error) {
	var payload moxfieldPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("could not parse deck data: %w", err)
	}

	if moxfieldID == "" {
		moxfieldID = payload.PublicID
	}

	name := payload.Name
	if name == "" {
		name = "Unknown Deck"
	}
	format := payload.Format
	if format == "" {
		format = "unknown"
	}

	boardNames := make([]string, 0, len(payload.Boards))
	for boardName := range payload.Boards {
		boardNames = append(boardNames, boardName)
	}
	sort.Strings(boardNames)

	var cards []Card
	for _, boardName := range boardNames {
		board := payload.Boards[boardName]
		boardCards := make([]Card, 0, len(board.Cards))
		for _, entry := range board.Cards {
			cardName := entry.Card.Name
			if cardName == "" {
				cardName = "Unknown"
			}
			quantity := entry.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			boardCards = append(boardCards, Card{
				Name:     cardName,
				Quantity: quantity,
				Board:    boardName,
				TypeLine: entry.Card.TypeLine,
				ManaCost: entry.Card.ManaCost,
				CMC:      entry.Card.CMC,
			})
		}
		sort.Slice(boardCards, func(i, j int) bool { return boardCards[i].Name < boardCards[j].Name })
		cards = append(cards, boardCards...)
	}

	return &Deck{
		Name:        name,
		Format:      format,
		MoxfieldID:  moxfieldID,
		Description: payload.Description,
		Cards:       cards,
		raw:         data,
	}, nil
}

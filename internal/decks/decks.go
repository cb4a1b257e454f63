// internal/decks/decks.go
// Package decks defines Magic: The Gathering deck records and their
// local on-disk persistence.
package decks

import (
	"fmt"
	"strings"
)

// Board names as Moxfield reports them.
const (
	BoardCommanders = "commanders"
	BoardMainboard  = "mainboard"
	BoardSideboard  = "sideboard"
	BoardMaybeboard = "maybeboard"
)

// boardOrder is the section order used when rendering a deck list.
var boardOrder = []string{BoardCommanders, BoardMainboard, BoardSideboard, BoardMaybeboard}

// Card is a single card entry in a deck.
type Card struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Board    string  `json:"board"`
	TypeLine string  `json:"type_line"`
	ManaCost string  `json:"mana_cost"`
	CMC      float64 `json:"cmc"`
}

// Deck is a Magic: The Gathering deck fetched from Moxfield.
type Deck struct {
	Name        string
	Format      string
	MoxfieldID  string
	Description string
	Cards       []Card
	raw         []byte
}

// RawJSON returns the original Moxfield payload the deck was built from,
// or nil if the deck was constructed without one.
func (d *Deck) RawJSON() []byte {
	return d.raw
}

// Commanders returns the cards on the commander board.
func (d *Deck) Commanders() []Card {
	return d.board(BoardCommanders)
}

// Mainboard returns the cards on the mainboard.
func (d *Deck) Mainboard() []Card {
	return d.board(BoardMainboard)
}

func (d *Deck) board(name string) []Card {
	var cards []Card
	for _, c := range d.Cards {
		if c.Board == name {
			cards = append(cards, c)
		}
	}
	return cards
}

// TotalCards returns the total number of cards, counting quantities.
func (d *Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Quantity
	}
	return total
}

// CardNames returns a lowercased set of every card name in the deck,
// across all boards.
func (d *Deck) CardNames() map[string]struct{} {
	names := make(map[string]struct{}, len(d.Cards))
	for _, c := range d.Cards {
		names[strings.ToLower(c.Name)] = struct{}{}
	}
	return names
}

// String summarizes the deck as a single line.
func (d *Deck) String() string {
	var commanders []string
	for _, c := range d.Commanders() {
		commanders = append(commanders, c.Name)
	}
	return fmt.Sprintf("%s (%s) - %d cards - Commander: %s",
		d.Name, d.Format, d.TotalCards(), strings.Join(commanders, ", "))
}

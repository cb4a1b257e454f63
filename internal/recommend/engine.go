// internal/recommend/engine.go
// Package recommend turns EDHREC commander data into deck-aware card
// recommendations and cut analysis.
package recommend

import (
	"errors"
	"sort"
	"strings"

	"github.com/mwiater/deckhand/internal/decks"
	"github.com/mwiater/deckhand/internal/edhrec"
)

// ErrNoCommander is returned for deck operations that need a commander.
var ErrNoCommander = errors.New("deck has no commander")

// Recommendation is a recommended card with its EDHREC synergy data.
type Recommendation struct {
	Name          string  `json:"name"`
	Synergy       float64 `json:"synergy"`
	NumDecks      int     `json:"num_decks"`
	InclusionRate float64 `json:"inclusion_rate"`
	InDeck        bool    `json:"in_deck"`
}

// category pairs the stable key used in results with the EDHREC
// cardlist header it reads from.
type category struct {
	Key    string
	Header string
}

// categories lists every recommendation category in a stable order.
var categories = []category{
	{Key: "high_synergy", Header: edhrec.HeaderHighSynergy},
	{Key: "top_cards", Header: edhrec.HeaderTopCards},
	{Key: "creatures", Header: edhrec.HeaderCreatures},
	{Key: "instants", Header: edhrec.HeaderInstants},
	{Key: "sorceries", Header: edhrec.HeaderSorceries},
	{Key: "artifacts", Header: edhrec.HeaderUtilityArtifacts},
	{Key: "enchantments", Header: edhrec.HeaderEnchantments},
	{Key: "lands", Header: edhrec.HeaderLands},
	{Key: "utility_lands", Header: edhrec.HeaderUtilityLands},
	{Key: "mana_artifacts", Header: edhrec.HeaderManaArtifacts},
}

// CategoryKeys returns the recommendation category keys in listing order.
func CategoryKeys() []string {
	keys := make([]string, 0, len(categories))
	for _, c := range categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// CategoryHeader returns the EDHREC cardlist header for a category key,
// or the empty string for an unknown key.
func CategoryHeader(key string) string {
	for _, c := range categories {
		if c.Key == key {
			return c.Header
		}
	}
	return ""
}

// Engine fetches card recommendations from EDHREC.
type Engine struct {
	client *edhrec.Client
}

// NewEngine returns an Engine backed by the given EDHREC client.
func NewEngine(client *edhrec.Client) *Engine {
	return &Engine{client: client}
}

// deckNames returns the lowercased card name set for a deck, or nil.
func deckNames(deck *decks.Deck) map[string]struct{} {
	if deck == nil {
		return nil
	}
	return deck.CardNames()
}

// fromCardViews converts EDHREC card views into recommendations, marking
// cards already present in the deck name set. The inclusion rate is
// num_decks over potential_decks, zero when potential_decks is zero.
func fromCardViews(views []edhrec.CardView, inDeck map[string]struct{}) []Recommendation {
	recs := make([]Recommendation, 0, len(views))
	for _, v := range views {
		rate := 0.0
		if v.PotentialDecks > 0 {
			rate = float64(v.NumDecks) / float64(v.PotentialDecks)
		}
		_, present := inDeck[strings.ToLower(v.Name)]
		recs = append(recs, Recommendation{
			Name:          v.Name,
			Synergy:       v.Synergy,
			NumDecks:      v.NumDecks,
			InclusionRate: rate,
			InDeck:        present,
		})
	}
	return recs
}

// ForCommander returns high-synergy recommendations for a commander,
// sorted by synergy descending. A non-nil deck marks cards already in it.
func (e *Engine) ForCommander(commanderName string, deck *decks.Deck, limit int) ([]Recommendation, error) {
	page, err := e.client.CommanderPage(commanderName)
	if err != nil {
		return nil, err
	}
	recs := fromCardViews(page.Cardlist(edhrec.HeaderHighSynergy), deckNames(deck))
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Synergy > recs[j].Synergy })
	return capRecs(recs, limit), nil
}

// TopCards returns the most played cards for a commander, sorted by
// inclusion rate descending.
func (e *Engine) TopCards(commanderName string, deck *decks.Deck, limit int) ([]Recommendation, error) {
	page, err := e.client.CommanderPage(commanderName)
	if err != nil {
		return nil, err
	}
	recs := fromCardViews(page.Cardlist(edhrec.HeaderTopCards), deckNames(deck))
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].InclusionRate > recs[j].InclusionRate })
	return capRecs(recs, limit), nil
}

// AllCategories returns every recommendation category for a commander,
// keyed by category key. One page fetch serves all categories.
func (e *Engine) AllCategories(commanderName string, deck *decks.Deck) (map[string][]Recommendation, error) {
	page, err := e.client.CommanderPage(commanderName)
	if err != nil {
		return nil, err
	}
	names := deckNames(deck)
	results := make(map[string][]Recommendation, len(categories))
	for _, c := range categories {
		results[c.Key] = fromCardViews(page.Cardlist(c.Header), names)
	}
	return results, nil
}

// SuggestAdditions returns high-synergy cards across every category that
// are not already in the deck, deduplicated by name and sorted by
// synergy descending.
func (e *Engine) SuggestAdditions(deck *decks.Deck, limit int) ([]Recommendation, error) {
	commanders := deck.Commanders()
	if len(commanders) == 0 {
		return nil, ErrNoCommander
	}

	all, err := e.AllCategories(commanders[0].Name, deck)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var suggestions []Recommendation
	for _, key := range CategoryKeys() {
		for _, rec := range all[key] {
			if rec.InDeck {
				continue
			}
			if _, ok := seen[rec.Name]; ok {
				continue
			}
			seen[rec.Name] = struct{}{}
			suggestions = append(suggestions, rec)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool { return suggestions[i].Synergy > suggestions[j].Synergy })
	return capRecs(suggestions, limit), nil
}

func capRecs(recs []Recommendation, limit int) []Recommendation {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

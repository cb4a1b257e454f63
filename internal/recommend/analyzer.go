// internal/recommend/analyzer.go
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwiater/deckhand/internal/decks"
)

// lowSynergyThreshold is the synergy score below which a non-staple card
// is flagged as a cut candidate.
const lowSynergyThreshold = 0.05

// staples are format mainstays that are never flagged for low synergy.
var staples = map[string]struct{}{
	"sol ring":             {},
	"command tower":        {},
	"arcane signet":        {},
	"lightning greaves":    {},
	"swiftfoot boots":      {},
	"swords to plowshares": {},
	"path to exile":        {},
	"beast within":         {},
	"nature's claim":       {},
	"chaos warp":           {},
	"counterspell":         {},
	"cyclonic rift":        {},
	"rhystic study":        {},
	"smothering tithe":     {},
}

// CutCandidate is a card that might be worth cutting from a deck.
type CutCandidate struct {
	Name     string   `json:"name"`
	Reason   string   `json:"reason"`
	Synergy  *float64 `json:"synergy,omitempty"`
	TypeLine string   `json:"type_line,omitempty"`
}

// Analysis is the result of analyzing a deck against EDHREC data.
type Analysis struct {
	Commander  string         `json:"commander"`
	LowSynergy []CutCandidate `json:"low_synergy"`
	OffTheme   []CutCandidate `json:"off_theme"`
	Coverage   float64        `json:"edhrec_coverage"`
}

// Analyzer analyzes a deck to find potential cuts.
type Analyzer struct {
	engine  *Engine
	staples map[string]struct{}
}

// NewAnalyzer returns an Analyzer backed by the given engine. Extra
// staple names from configuration join the built-in staple set.
func NewAnalyzer(engine *Engine, extraStaples []string) *Analyzer {
	merged := make(map[string]struct{}, len(staples)+len(extraStaples))
	for name := range staples {
		merged[name] = struct{}{}
	}
	for _, name := range extraStaples {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			merged[name] = struct{}{}
		}
	}
	return &Analyzer{engine: engine, staples: merged}
}

// Analyze scores every mainboard card against the commander's EDHREC
// data. Cards found there with synergy below the threshold (staples
// excepted) become low-synergy cut candidates; cards absent from the
// data entirely are off-theme. Coverage is the fraction of considered
// cards that appear in the EDHREC data. Basic lands and the commander
// itself are never considered.
func (a *Analyzer) Analyze(deck *decks.Deck) (*Analysis, error) {
	commanders := deck.Commanders()
	if len(commanders) == 0 {
		return nil, ErrNoCommander
	}
	commander := commanders[0].Name

	all, err := a.engine.AllCategories(commander, deck)
	if err != nil {
		return nil, err
	}

	// Best synergy score seen for each card across all categories.
	edhrecCards := make(map[string]float64)
	for _, recs := range all {
		for _, rec := range recs {
			if best, ok := edhrecCards[rec.Name]; !ok || rec.Synergy > best {
				edhrecCards[rec.Name] = rec.Synergy
			}
		}
	}

	var lowSynergy, offTheme []CutCandidate
	inEdhrecCount := 0
	considered := 0

	for _, card := range deck.Cards {
		if card.Board != decks.BoardMainboard && card.Board != decks.BoardCommanders {
			continue
		}
		if strings.Contains(card.TypeLine, "Basic Land") {
			continue
		}
		if card.Name == commander {
			continue
		}
		considered++

		synergy, ok := edhrecCards[card.Name]
		if !ok {
			offTheme = append(offTheme, CutCandidate{
				Name:     card.Name,
				Reason:   "Not in EDHREC top cards for this commander",
				TypeLine: card.TypeLine,
			})
			continue
		}

		inEdhrecCount++
		if synergy < lowSynergyThreshold {
			if _, staple := a.staples[strings.ToLower(card.Name)]; staple {
				continue
			}
			s := synergy
			lowSynergy = append(lowSynergy, CutCandidate{
				Name:     card.Name,
				Reason:   fmt.Sprintf("Low synergy (%+.0f%%)", synergy*100),
				Synergy:  &s,
				TypeLine: card.TypeLine,
			})
		}
	}

	sort.SliceStable(lowSynergy, func(i, j int) bool {
		return *lowSynergy[i].Synergy < *lowSynergy[j].Synergy
	})

	coverage := 0.0
	if considered > 0 {
		coverage = float64(inEdhrecCount) / float64(considered)
	}

	return &Analysis{
		Commander:  commander,
		LowSynergy: lowSynergy,
		OffTheme:   offTheme,
		Coverage:   coverage,
	}, nil
}

// SuggestCuts returns up to limit cut candidates, low-synergy cards
// first (worst synergy leading), then off-theme cards.
func (a *Analyzer) SuggestCuts(deck *decks.Deck, limit int) ([]CutCandidate, error) {
	analysis, err := a.Analyze(deck)
	if err != nil {
		return nil, err
	}

	candidates := make([]CutCandidate, 0, len(analysis.LowSynergy)+len(analysis.OffTheme))
	candidates = append(candidates, analysis.LowSynergy...)
	candidates = append(candidates, analysis.OffTheme...)

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

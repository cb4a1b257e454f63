// internal/recommend/engine_test.go
package recommend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwiater/deckhand/internal/decks"
	"github.com/mwiater/deckhand/internal/edhrec"
)

const testDeckJSON = `{
  "name": "Tannuk Test",
  "format": "commander",
  "publicId": "t1",
  "boards": {
    "commanders": {
      "cards": {
        "c": {"quantity": 1, "card": {"name": "Tannuk, Steadfast Second", "type_line": "Legendary Creature"}}
      }
    },
    "mainboard": {
      "cards": {
        "1": {"quantity": 1, "card": {"name": "Sol Ring", "type_line": "Artifact"}},
        "2": {"quantity": 1, "card": {"name": "Weak Card", "type_line": "Creature"}},
        "3": {"quantity": 1, "card": {"name": "Random Pet", "type_line": "Creature"}},
        "4": {"quantity": 5, "card": {"name": "Mountain", "type_line": "Basic Land — Mountain"}},
        "5": {"quantity": 1, "card": {"name": "Great Card", "type_line": "Enchantment"}}
      }
    }
  }
}`

const testPageJSON = `{
  "container": {
    "json_dict": {
      "cardlists": [
        {
          "header": "High Synergy Cards",
          "cardviews": [
            {"name": "Great Card", "synergy": 0.5, "num_decks": 8000, "potential_decks": 16000},
            {"name": "Aetherflux Reservoir", "synergy": 0.42, "num_decks": 6000, "potential_decks": 16000}
          ]
        },
        {
          "header": "Top Cards",
          "cardviews": [
            {"name": "Sol Ring", "synergy": 0.01, "num_decks": 15000, "potential_decks": 16000},
            {"name": "Arcane Signet", "synergy": 0.02, "num_decks": 14000, "potential_decks": 16000}
          ]
        },
        {
          "header": "Creatures",
          "cardviews": [
            {"name": "Weak Card", "synergy": 0.01, "num_decks": 200, "potential_decks": 16000},
            {"name": "Aetherflux Reservoir", "synergy": 0.42, "num_decks": 6000, "potential_decks": 16000}
          ]
        },
        {
          "header": "Mana Artifacts",
          "cardviews": [
            {"name": "Arcane Signet", "synergy": 0.02, "num_decks": 14000, "potential_decks": 0}
          ]
        }
      ]
    }
  }
}`

// newTestEngine starts a fake EDHREC server serving the test page for
// every commander and returns an engine wired to it.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testPageJSON))
	}))
	t.Cleanup(server.Close)
	return NewEngine(edhrec.NewClient(server.URL, time.Second, server.Client()))
}

func loadTestDeck(t *testing.T) *decks.Deck {
	t.Helper()
	deck, err := decks.FromMoxfieldData([]byte(testDeckJSON), "")
	if err != nil {
		t.Fatal(err)
	}
	return deck
}

// TestForCommander verifies high-synergy recommendations come back
// sorted by synergy descending with in-deck cards marked, and that the
// limit is applied.
func TestForCommander(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	deck := loadTestDeck(t)

	recs, err := engine.ForCommander("Tannuk, Steadfast Second", deck, 50)
	if err != nil {
		t.Fatalf("ForCommander returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Name != "Great Card" || !recs[0].InDeck {
		t.Fatalf("expected Great Card first and marked in deck, got %+v", recs[0])
	}
	if recs[1].Name != "Aetherflux Reservoir" || recs[1].InDeck {
		t.Fatalf("expected Aetherflux Reservoir second and not in deck, got %+v", recs[1])
	}

	limited, err := engine.ForCommander("Tannuk, Steadfast Second", nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit of 1 applied, got %d", len(limited))
	}
	if limited[0].InDeck {
		t.Fatal("nil deck should not mark anything in deck")
	}
}

// TestTopCards verifies top cards sort by inclusion rate and that a zero
// potential_decks value yields a zero inclusion rate instead of a
// division error.
func TestTopCards(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	recs, err := engine.TopCards("Tannuk, Steadfast Second", nil, 50)
	if err != nil {
		t.Fatalf("TopCards returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 top cards, got %d", len(recs))
	}
	if recs[0].Name != "Sol Ring" {
		t.Fatalf("expected Sol Ring to lead by inclusion rate, got %+v", recs[0])
	}
	if recs[0].InclusionRate <= recs[1].InclusionRate {
		t.Fatalf("expected descending inclusion rate, got %v then %v", recs[0].InclusionRate, recs[1].InclusionRate)
	}
}

// TestAllCategories verifies every category key is present and that the
// zero potential_decks entry has a zero inclusion rate.
func TestAllCategories(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	all, err := engine.AllCategories("Tannuk, Steadfast Second", nil)
	if err != nil {
		t.Fatalf("AllCategories returned error: %v", err)
	}
	for _, key := range CategoryKeys() {
		if _, ok := all[key]; !ok {
			t.Fatalf("missing category %q in results", key)
		}
	}
	if len(all["creatures"]) != 2 {
		t.Fatalf("unexpected creatures: %+v", all["creatures"])
	}
	mana := all["mana_artifacts"]
	if len(mana) != 1 || mana[0].InclusionRate != 0 {
		t.Fatalf("expected zero inclusion rate for zero potential decks, got %+v", mana)
	}
	if len(all["lands"]) != 0 {
		t.Fatalf("expected empty lands category, got %+v", all["lands"])
	}
}

// TestSuggestAdditions verifies suggestions skip cards already in the
// deck, deduplicate across categories, and sort by synergy descending.
func TestSuggestAdditions(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	deck := loadTestDeck(t)

	suggestions, err := engine.SuggestAdditions(deck, 20)
	if err != nil {
		t.Fatalf("SuggestAdditions returned error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d: %+v", len(suggestions), suggestions)
	}
	if suggestions[0].Name != "Aetherflux Reservoir" {
		t.Fatalf("expected Aetherflux Reservoir first, got %+v", suggestions[0])
	}
	if suggestions[1].Name != "Arcane Signet" {
		t.Fatalf("expected Arcane Signet second, got %+v", suggestions[1])
	}
}

// TestSuggestAdditionsNoCommander verifies the commander requirement.
func TestSuggestAdditionsNoCommander(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	deck, err := decks.FromMoxfieldData([]byte(`{"name": "No Commander"}`), "x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := engine.SuggestAdditions(deck, 20); err != ErrNoCommander {
		t.Fatalf("expected ErrNoCommander, got %v", err)
	}
}

// TestCategoryHeader verifies the category key to header mapping.
func TestCategoryHeader(t *testing.T) {
	t.Parallel()

	if got := CategoryHeader("artifacts"); got != edhrec.HeaderUtilityArtifacts {
		t.Fatalf("expected artifacts to map to %q, got %q", edhrec.HeaderUtilityArtifacts, got)
	}
	if got := CategoryHeader("bogus"); got != "" {
		t.Fatalf("expected empty header for unknown key, got %q", got)
	}
}

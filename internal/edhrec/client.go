// internal/edhrec/client.go
// Package edhrec is a thin client for EDHREC's commander page JSON.
package edhrec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mwiater/deckhand/internal/logging"
)

const (
	// defaultBaseURL serves the pre-rendered page JSON documents.
	defaultBaseURL = "https://json.edhrec.com"
)

// Cardlist headers as they appear on a commander page.
const (
	HeaderHighSynergy      = "High Synergy Cards"
	HeaderTopCards         = "Top Cards"
	HeaderCreatures        = "Creatures"
	HeaderInstants         = "Instants"
	HeaderSorceries        = "Sorceries"
	HeaderUtilityArtifacts = "Utility Artifacts"
	HeaderEnchantments     = "Enchantments"
	HeaderLands            = "Lands"
	HeaderUtilityLands     = "Utility Lands"
	HeaderManaArtifacts    = "Mana Artifacts"
)

var slugStrip = regexp.MustCompile(`[,']`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slug formats a commander name for EDHREC URLs: lowercase, commas and
// apostrophes removed, whitespace runs collapsed to single hyphens.
func Slug(commanderName string) string {
	formatted := strings.ToLower(strings.TrimSpace(commanderName))
	formatted = slugStrip.ReplaceAllString(formatted, "")
	formatted = slugSpaces.ReplaceAllString(formatted, "-")
	return formatted
}

// CardView is one card entry within a commander page cardlist.
type CardView struct {
	Name           string  `json:"name"`
	Synergy        float64 `json:"synergy"`
	NumDecks       int     `json:"num_decks"`
	PotentialDecks int     `json:"potential_decks"`
}

// CommanderPage holds the cardlists from a commander's EDHREC page.
type CommanderPage struct {
	Commander string
	lists     []pageCardlist
}

type pageCardlist struct {
	Header    string     `json:"header"`
	CardViews []CardView `json:"cardviews"`
}

// commanderPagePayload mirrors the slice of the page JSON the tool reads.
type commanderPagePayload struct {
	Container struct {
		JSONDict struct {
			Cardlists []pageCardlist `json:"cardlists"`
		} `json:"json_dict"`
	} `json:"container"`
}

// Cardlist returns the card views under the given header. Headers are
// matched case-insensitively by prefix so decorated headers still hit.
func (p *CommanderPage) Cardlist(header string) []CardView {
	want := strings.ToLower(header)
	for _, list := range p.lists {
		if strings.HasPrefix(strings.ToLower(list.Header), want) {
			return list.CardViews
		}
	}
	return nil
}

// Headers returns every cardlist header on the page, in page order.
func (p *CommanderPage) Headers() []string {
	headers := make([]string, 0, len(p.lists))
	for _, list := range p.lists {
		headers = append(headers, list.Header)
	}
	return headers
}

// Client talks to the EDHREC JSON endpoint.
type Client struct {
	BaseURL        string
	Debug          bool
	client         *http.Client
	requestTimeout time.Duration
}

// NewClient returns a Client with the given request timeout. A nil
// httpClient falls back to a dedicated client with the same timeout.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		client:         httpClient,
		requestTimeout: timeout,
	}
}

// CommanderPage fetches and parses the page JSON for a commander. One
// fetch carries every cardlist the page knows about, so callers reuse
// the returned page across categories.
func (c *Client) CommanderPage(commanderName string) (*CommanderPage, error) {
	slug := Slug(commanderName)
	path := fmt.Sprintf("/pages/commanders/%s.json", slug)
	if c.Debug {
		logging.LogRequest("out", "edhrec", commanderName, path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch EDHREC page for %s: EDHREC is not accessible", commanderName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("could not fetch EDHREC page for %s: %s: %s", commanderName, resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading EDHREC response for %s: %v", commanderName, err)
	}

	var payload commanderPagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error parsing EDHREC page for %s: %v", commanderName, err)
	}
	if c.Debug {
		logging.LogRequest("in", "edhrec", commanderName, fmt.Sprintf("%d cardlists", len(payload.Container.JSONDict.Cardlists)))
	}

	return &CommanderPage{
		Commander: commanderName,
		lists:     payload.Container.JSONDict.Cardlists,
	}, nil
}

// ArticleURL returns the EDHREC deck tech article URL for a commander.
func ArticleURL(commanderName string) string {
	return fmt.Sprintf("https://edhrec.com/articles/%s-commander-deck-tech", Slug(commanderName))
}

// PageURL returns the main EDHREC commander page URL.
func PageURL(commanderName string) string {
	return fmt.Sprintf("https://edhrec.com/commanders/%s", Slug(commanderName))
}

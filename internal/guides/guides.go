// internal/guides/guides.go
// Package guides finds primers and guides for commanders.
package guides

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mwiater/deckhand/internal/edhrec"
	"github.com/mwiater/deckhand/internal/logging"
	"github.com/mwiater/deckhand/internal/moxfield"
)

// defaultArticleBaseURL hosts EDHREC's deck tech articles.
const defaultArticleBaseURL = "https://edhrec.com"

// metaDescription pulls the content of a page's description meta tag.
var metaDescription = regexp.MustCompile(`<meta[^>]*name="description"[^>]*content="([^"]*)"`)

// Guide is a primer or guide resource for a commander.
type Guide struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Summary string `json:"summary,omitempty"`
}

// Fetcher fetches primers and guides from various sources.
type Fetcher struct {
	// ArticleBaseURL overrides the EDHREC article host, mainly for tests.
	ArticleBaseURL string
	Debug          bool
	client         *http.Client
	requestTimeout time.Duration
}

// NewFetcher returns a Fetcher with the given article probe timeout. A
// nil httpClient falls back to a dedicated client with the same timeout.
func NewFetcher(timeout time.Duration, httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Fetcher{
		ArticleBaseURL: defaultArticleBaseURL,
		client:         httpClient,
		requestTimeout: timeout,
	}
}

// ArticleURL returns the EDHREC deck tech article URL for a commander.
func (f *Fetcher) ArticleURL(commanderName string) string {
	return fmt.Sprintf("%s/articles/%s-commander-deck-tech", strings.TrimRight(f.ArticleBaseURL, "/"), edhrec.Slug(commanderName))
}

// FetchArticle probes the EDHREC deck tech article for a commander. When
// the article exists, the page's meta description becomes the guide
// summary. Any failure yields nil rather than an error: a missing
// article just means one fewer guide.
func (f *Fetcher) FetchArticle(commanderName string) *Guide {
	url := f.ArticleURL(commanderName)
	if f.Debug {
		logging.LogRequest("out", "edhrec", commanderName, url)
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	text := string(body)
	if !strings.Contains(strings.ToLower(text), "article") {
		return nil
	}

	summary := ""
	if match := metaDescription.FindStringSubmatch(text); match != nil {
		summary = match[1]
	}

	return &Guide{
		Title:   fmt.Sprintf("%s Commander Deck Tech", commanderName),
		URL:     url,
		Source:  "edhrec",
		Summary: summary,
	}
}

// AllGuides returns every available guide for a commander: the deck tech
// article when it exists, then the EDHREC commander page and a Moxfield
// primer search as always-present resources.
func (f *Fetcher) AllGuides(commanderName string) []Guide {
	var guides []Guide

	if article := f.FetchArticle(commanderName); article != nil {
		guides = append(guides, *article)
	}

	guides = append(guides, Guide{
		Title:   fmt.Sprintf("%s on EDHREC", commanderName),
		URL:     edhrec.PageURL(commanderName),
		Source:  "edhrec",
		Summary: "Card recommendations, synergies, and deck statistics",
	})

	guides = append(guides, Guide{
		Title:   fmt.Sprintf("Search Moxfield for %s primers", commanderName),
		URL:     moxfield.SearchURL(commanderName),
		Source:  "moxfield",
		Summary: "Search for community deck primers on Moxfield",
	})

	return guides
}

// internal/moxfield/client.go
// Package moxfield is a thin client for the Moxfield deck API.
package moxfield

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mwiater/deckhand/internal/logging"
)

const (
	// defaultBaseURL is the public Moxfield API endpoint.
	defaultBaseURL = "https://api2.moxfield.com"
	// userAgent mimics a regular browser; the API rejects the default Go client string.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) deckhand/1.0"
)

// Client talks to the Moxfield deck API.
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

// ParseID extracts a deck ID from a full moxfield.com deck URL, or
// returns the input unchanged when it is already a bare ID.
func ParseID(idOrURL string) string {
	id := strings.TrimSpace(idOrURL)
	if marker := "moxfield.com/decks/"; strings.Contains(id, marker) {
		id = id[strings.Index(id, marker)+len(marker):]
		if slash := strings.Index(id, "/"); slash != -1 {
			id = id[:slash]
		}
	}
	return id
}

// doRequest executes an HTTP request against the Moxfield API with
// context cancellation support.
func (c *Client) doRequest(method, path string) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", c.BaseURL, path), nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return resp, cancel, nil
}

// GetDeck fetches the raw deck payload for a deck ID via the
// /v3/decks/all endpoint.
func (c *Client) GetDeck(id string) ([]byte, error) {
	path := fmt.Sprintf("/v3/decks/all/%s", url.PathEscape(id))
	if c.Debug {
		logging.LogRequest("out", "moxfield", id, path)
	}

	resp, cancel, err := c.doRequest(http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("could not fetch deck %s: Moxfield is not accessible", id)
	}
	defer cancel()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("could not fetch deck %s: %s: %s", id, resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading deck response for %s: %v", id, err)
	}
	if c.Debug {
		logging.LogRequest("in", "moxfield", id, fmt.Sprintf("%d bytes", len(body)))
	}
	return body, nil
}

// SearchURL builds a Moxfield search URL for community primers that name
// the given commander.
func SearchURL(commanderName string) string {
	query := url.QueryEscape(fmt.Sprintf("%q primer", commanderName))
	return fmt.Sprintf("https://moxfield.com/decks/search?q=%s&fmt=commander", query)
}

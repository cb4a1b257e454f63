// internal/moxfield/client_test.go
package moxfield

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestParseID verifies deck ID extraction from bare IDs, full deck URLs,
// and deck URLs with trailing path segments.
func TestParseID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare id", in: "Smh7ryekIUeOQd9mlYjBXA", want: "Smh7ryekIUeOQd9mlYjBXA"},
		{name: "full url", in: "https://moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA", want: "Smh7ryekIUeOQd9mlYjBXA"},
		{name: "url with suffix", in: "https://moxfield.com/decks/abc123/primer", want: "abc123"},
		{name: "url without scheme", in: "moxfield.com/decks/abc123", want: "abc123"},
		{name: "whitespace", in: "  abc123  ", want: "abc123"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseID(tc.in); got != tc.want {
				t.Fatalf("ParseID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestGetDeck verifies the client hits the v3 deck endpoint with a
// browser-like User-Agent and returns the raw body.
func TestGetDeck(t *testing.T) {
	t.Parallel()

	const payload = `{"name": "Test Deck", "boards": {}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/decks/all/abc123" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); strings.HasPrefix(ua, "Go-http-client") || ua == "" {
			t.Fatalf("expected browser-like User-Agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, server.Client())
	body, err := client.GetDeck("abc123")
	if err != nil {
		t.Fatalf("GetDeck returned error: %v", err)
	}
	if string(body) != payload {
		t.Fatalf("expected raw payload back, got %q", string(body))
	}
}

// TestGetDeckErrors verifies non-200 responses and unreachable servers
// surface as errors.
func TestGetDeckErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "deck not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, server.Client())
	if _, err := client.GetDeck("missing"); err == nil {
		t.Fatal("expected error for 404 response")
	} else if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected deck ID in error, got: %v", err)
	}

	down := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nil)
	if _, err := down.GetDeck("abc"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

// TestSearchURL verifies the primer search URL quotes the commander name
// and pins the commander format.
func TestSearchURL(t *testing.T) {
	t.Parallel()

	got := SearchURL("Tannuk, Memorial Ensign")
	if !strings.HasPrefix(got, "https://moxfield.com/decks/search?q=") {
		t.Fatalf("unexpected search URL: %s", got)
	}
	if !strings.Contains(got, "&fmt=commander") {
		t.Fatalf("expected commander format pin, got: %s", got)
	}
	if !strings.Contains(got, "%22Tannuk%2C+Memorial+Ensign%22+primer") {
		t.Fatalf("expected quoted commander query, got: %s", got)
	}
}

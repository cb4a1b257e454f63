// internal/guides/guides_test.go
package guides

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestFetchArticle verifies the article probe: a 200 page mentioning an
// article yields a guide with the meta description as its summary.
func TestFetchArticle(t *testing.T) {
	t.Parallel()

	const page = `<html><head>
	<meta property="og:title" content="x">
	<meta name="description" content="A deep dive into Tannuk landfall lines.">
	</head><body>This article covers the deck.</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles/tannuk-memorial-ensign-commander-deck-tech" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second, server.Client())
	fetcher.ArticleBaseURL = server.URL

	guide := fetcher.FetchArticle("Tannuk, Memorial Ensign")
	if guide == nil {
		t.Fatal("expected a guide, got nil")
	}
	if guide.Title != "Tannuk, Memorial Ensign Commander Deck Tech" {
		t.Fatalf("unexpected title: %q", guide.Title)
	}
	if guide.Source != "edhrec" {
		t.Fatalf("unexpected source: %q", guide.Source)
	}
	if guide.Summary != "A deep dive into Tannuk landfall lines." {
		t.Fatalf("unexpected summary: %q", guide.Summary)
	}
}

// TestFetchArticleAbsent verifies that 404s, non-article pages, and
// unreachable hosts all yield nil without error.
func TestFetchArticleAbsent(t *testing.T) {
	t.Parallel()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	fetcher := NewFetcher(time.Second, notFound.Client())
	fetcher.ArticleBaseURL = notFound.URL
	if guide := fetcher.FetchArticle("Atraxa"); guide != nil {
		t.Fatalf("expected nil for 404, got %+v", guide)
	}

	noArticle := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing here</body></html>"))
	}))
	defer noArticle.Close()

	fetcher2 := NewFetcher(time.Second, noArticle.Client())
	fetcher2.ArticleBaseURL = noArticle.URL
	if guide := fetcher2.FetchArticle("Atraxa"); guide != nil {
		t.Fatalf("expected nil for page without article text, got %+v", guide)
	}

	down := NewFetcher(200*time.Millisecond, nil)
	down.ArticleBaseURL = "http://127.0.0.1:1"
	if guide := down.FetchArticle("Atraxa"); guide != nil {
		t.Fatalf("expected nil for unreachable host, got %+v", guide)
	}
}

// TestAllGuides verifies the EDHREC commander page and Moxfield search
// resources are always present, with the article guide leading when the
// probe succeeds.
func TestAllGuides(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>This article rocks.</body></html>`))
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second, server.Client())
	fetcher.ArticleBaseURL = server.URL

	all := fetcher.AllGuides("Tannuk, Memorial Ensign")
	if len(all) != 3 {
		t.Fatalf("expected 3 guides, got %d: %+v", len(all), all)
	}
	if !strings.Contains(all[0].URL, "commander-deck-tech") {
		t.Fatalf("expected article guide first, got %+v", all[0])
	}
	if all[1].URL != "https://edhrec.com/commanders/tannuk-memorial-ensign" {
		t.Fatalf("unexpected commander page guide: %+v", all[1])
	}
	if all[2].Source != "moxfield" || !strings.Contains(all[2].URL, "moxfield.com/decks/search") {
		t.Fatalf("unexpected search guide: %+v", all[2])
	}

	down := NewFetcher(200*time.Millisecond, nil)
	down.ArticleBaseURL = "http://127.0.0.1:1"
	fallback := down.AllGuides("Tannuk, Memorial Ensign")
	if len(fallback) != 2 {
		t.Fatalf("expected 2 guides without an article, got %d", len(fallback))
	}
}

// TestPrintGuides verifies the numbered listing format with upper-cased
// source tags and truncated summaries.
func TestPrintGuides(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200)
	var buf bytes.Buffer
	PrintGuides(&buf, []Guide{
		{Title: "Primer", URL: "https://example.com", Source: "edhrec", Summary: long},
		{Title: "Search", URL: "https://example.com/2", Source: "moxfield"},
	})

	out := buf.String()
	if !strings.Contains(out, "Found 2 guides/resources:") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "EDHREC") || !strings.Contains(out, "MOXFIELD") {
		t.Fatalf("missing upper-cased source tags:\n%s", out)
	}
	if strings.Contains(out, long) {
		t.Fatalf("expected long summary truncated:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("x", 150)+"...") {
		t.Fatalf("expected truncated summary with trailing dots:\n%s", out)
	}
}

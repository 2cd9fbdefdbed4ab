package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGoogleSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "golang" || r.URL.Query().Get("num") != "2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"items":[{"title":"Result 1","link":"https://example.com/1","snippet":"One"},{"title":"Result 2","link":"https://example.com/2","snippet":"Two"}]}`)
	}))
	defer srv.Close()

	g := GoogleSearch{APIKey: "test", CX: "cx", Endpoint: srv.URL}
	results, err := g.Search(context.Background(), "golang", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].Title != "Result 1" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestGoogleSearchMissingCredentials(t *testing.T) {
	_, err := GoogleSearch{CX: "cx"}.Search(context.Background(), "golang", 1)
	if err == nil || err.Error() != "GOOGLE_SEARCH_API_KEY environment variable is required" {
		t.Fatalf("expected API key error, got: %v", err)
	}
	_, err = GoogleSearch{APIKey: "key"}.Search(context.Background(), "golang", 1)
	if err == nil || err.Error() != "GOOGLE_SEARCH_CX environment variable is required" {
		t.Fatalf("expected CX error, got: %v", err)
	}
}

func TestGoogleSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := GoogleSearch{APIKey: "test", CX: "cx", Endpoint: srv.URL}.Search(context.Background(), "golang", 1)
	if err == nil {
		t.Fatalf("expected error for HTTP 500, got none")
	}
}

type stubSearch struct {
	results []SearchResult
	gotMax  int
}

func (s *stubSearch) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	s.gotMax = maxResults
	return s.results, nil
}

func TestSearchWebFormatsResults(t *testing.T) {
	stub := &stubSearch{results: []SearchResult{
		{Title: "A", Link: "https://a", Snippet: "first"},
		{Title: "B", Link: "https://b", Snippet: "second"},
	}}
	env := testEnv(t.TempDir(), &fakeRunner{})
	env.Search = stub

	out := SearchWeb{Query: "letters"}.Run(context.Background(), env)
	expected := "A\nhttps://a\nfirst\n\nB\nhttps://b\nsecond"
	if out != expected {
		t.Fatalf("expected %q got %q", expected, out)
	}
	if stub.gotMax != 5 {
		t.Fatalf("expected default of 5 results, got %d", stub.gotMax)
	}
}

func TestSearchWebEdgeCases(t *testing.T) {
	env := testEnv(t.TempDir(), &fakeRunner{})
	env.Search = &stubSearch{}

	if out := (SearchWeb{Query: "  \t"}).Run(context.Background(), env); out != "Error: query cannot be empty" {
		t.Fatalf("unexpected output for blank query: %q", out)
	}
	if out := (SearchWeb{Query: "nothing"}).Run(context.Background(), env); out != "No results found." {
		t.Fatalf("unexpected output for empty results: %q", out)
	}

	env.Search = nil
	if out := (SearchWeb{Query: "x"}).Run(context.Background(), env); !strings.Contains(out, "not configured") {
		t.Fatalf("unexpected output without searcher: %q", out)
	}
}

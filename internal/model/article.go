package model

import "time"

// Author tag stamped on every generated article.
const AgentAuthor = "AI Research Agent"

// Angle is a proposed story idea produced by the brainstormer. Angles are
// ephemeral: consumed once by the writer, never persisted.
type Angle struct {
	Title       string
	SearchQuery string
	Focus       string
}

// SearchResult is one hit from the web search provider.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Article is the persisted entity. Slug is the dedupe key: storing an article
// whose slug already exists replaces the old entry. JSON tags match the store
// file format served to the website.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	Tags      []string  `json:"tags"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	SourceURL string    `json:"sourceUrl,omitempty"`
}

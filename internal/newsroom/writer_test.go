package newsroom

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"newsroom/internal/model"

	"github.com/go-playground/assert/v2"
)

var testResults = []model.SearchResult{
	{Title: "First Hit", URL: "https://example.com/first", Snippet: "snippet one"},
	{Title: "Second Hit", URL: "https://example.com/second", Snippet: "snippet two"},
}

func newTestWriter(client *fakeLLM) *Writer {
	w := NewWriter(client)
	w.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	w.seed = func() int { return 42 }
	return w
}

func TestWriteFullArticle(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"title": "DeepSeek V3 Crushes Benchmarks",
		"excerpt": "A new model tops the charts. It is fast and cheap.",
		"content": "## Big News\n\nLots of detail here.",
		"tags": ["LLM", "Benchmarks", "DeepSeek"],
		"slug": "deepseek-v3-crushes-benchmarks"
	}`}}}

	angle := model.Angle{Title: "DeepSeek V3 Release", Focus: "benchmark numbers"}
	article := newTestWriter(client).Write(context.Background(), angle, testResults)

	assert.NotEqual(t, (*model.Article)(nil), article)
	assert.Equal(t, "DeepSeek V3 Crushes Benchmarks", article.Title)
	assert.Equal(t, "deepseek-v3-crushes-benchmarks", article.Slug)
	assert.Equal(t, "A new model tops the charts. It is fast and cheap.", article.Excerpt)
	assert.Equal(t, "## Big News\n\nLots of detail here.", article.Content)
	assert.Equal(t, model.AgentAuthor, article.Author)
	assert.Equal(t, []string{"LLM", "Benchmarks", "DeepSeek"}, article.Tags)
	assert.Equal(t, "https://example.com/first", article.SourceURL)
	assert.Equal(t, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), article.Date)
	assert.NotEqual(t, "", article.ID)
}

func TestWritePromptCarriesResearch(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"title":"T","content":"C"}`}}}

	angle := model.Angle{Title: "X", Focus: "Y"}
	newTestWriter(client).Write(context.Background(), angle, testResults)

	assert.Equal(t, 1, len(client.prompts))
	prompt := client.prompts[0]
	if !strings.Contains(prompt, "Headline: X") || !strings.Contains(prompt, "Focus: Y") {
		t.Errorf("prompt missing angle fields: %q", prompt)
	}
	if !strings.Contains(prompt, "https://example.com/first") {
		t.Errorf("prompt missing serialized search results: %q", prompt)
	}
}

func TestWriteSlugDerivedFromAngleTitle(t *testing.T) {
	// Model returns its own title but no slug; the slug must come from the
	// angle's title so it does not drift with model phrasing.
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"title": "Z",
		"content": "body text"
	}`}}}

	angle := model.Angle{Title: "X", Focus: "Y"}
	article := newTestWriter(client).Write(context.Background(), angle, testResults)

	assert.NotEqual(t, (*model.Article)(nil), article)
	assert.Equal(t, "Z", article.Title)
	assert.Equal(t, "x", article.Slug)
}

func TestWriteTagsFallback(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"title": "T",
		"content": "body"
	}`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.NotEqual(t, (*model.Article)(nil), article)
	assert.Equal(t, []string{"AI", "Tech"}, article.Tags)
}

func TestWriteNilOnMissingContent(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"title": "T", "excerpt": "E"}`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.Equal(t, (*model.Article)(nil), article)
}

func TestWriteNilOnMissingTitle(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"content": "body"}`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.Equal(t, (*model.Article)(nil), article)
}

func TestWriteNilOnModelError(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{err: errors.New("timeout")}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.Equal(t, (*model.Article)(nil), article)
}

func TestWriteNilOnMalformedJSON(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `not json at all`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.Equal(t, (*model.Article)(nil), article)
}

func TestWriteNoSourceURLWithoutResults(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{"title": "T", "content": "body"}`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, nil)

	assert.NotEqual(t, (*model.Article)(nil), article)
	assert.Equal(t, "", article.SourceURL)
}

func TestWriteImageURLWellFormed(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{{content: `{
		"title": "GPU Wars Heat Up",
		"content": "body",
		"tags": ["GPU"]
	}`}}}

	article := newTestWriter(client).Write(context.Background(), model.Angle{Title: "T"}, testResults)

	assert.NotEqual(t, (*model.Article)(nil), article)
	if !strings.HasPrefix(article.ImageURL, "https://image.pollinations.ai/prompt/") {
		t.Errorf("unexpected image URL prefix: %q", article.ImageURL)
	}
	// The prompt-derived substring must survive URL encoding; exact seeds are
	// not asserted anywhere.
	if !strings.Contains(article.ImageURL, "GPU") {
		t.Errorf("image URL missing prompt-derived substring: %q", article.ImageURL)
	}
	if !strings.Contains(article.ImageURL, "seed=") {
		t.Errorf("image URL missing seed parameter: %q", article.ImageURL)
	}
}

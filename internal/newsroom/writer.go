package newsroom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"newsroom/internal/model"
	"newsroom/pkg/llm"

	"github.com/google/uuid"
)

const writerPromptFormat = `You are a Senior AI Journalist.
Write a full news article based on the following research.

Headline: %s
Focus: %s
Research Data: %s

Requirements:
1. **Format**: Return a JSON object with:
   - "title": Final engaging headline
   - "excerpt": 2-sentence summary
   - "content": Full article in Markdown (at least 500 words). Use ## headers.
   - "tags": Array of 3-5 keywords
   - "slug": URL-friendly slug (e.g., "deepseek-v3-release")
2. **Style**: Professional, technical, objective. No fluff.
3. **Images**: I will handle images later, just write the text.`

var defaultTags = []string{"AI", "Tech"}

type Writer struct {
	llm  llm.Client
	now  func() time.Time
	seed func() int
}

func NewWriter(client llm.Client) *Writer {
	return &Writer{
		llm:  client,
		now:  time.Now,
		seed: func() int { return rand.IntN(1000) },
	}
}

// Write researches and drafts one article for the given angle. It returns nil
// on any model failure or when the output is missing title or content; every
// other omitted field is backfilled. Errors never propagate to the caller.
func (w *Writer) Write(ctx context.Context, angle model.Angle, results []model.SearchResult) *model.Article {
	research, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		slog.Error("failed to serialize search results", "angle", angle.Title, "error", err)
		return nil
	}

	prompt := fmt.Sprintf(writerPromptFormat, angle.Title, angle.Focus, research)

	content, err := w.llm.Complete(ctx, prompt, true)
	if err != nil {
		slog.Error("article writing failed", "angle", angle.Title, "error", err)
		return nil
	}

	var parsed struct {
		Title   string   `json:"title"`
		Excerpt string   `json:"excerpt"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
		Slug    string   `json:"slug"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		slog.Error("article response is not valid JSON", "angle", angle.Title, "error", err)
		return nil
	}

	if parsed.Title == "" || parsed.Content == "" {
		slog.Warn("article response missing title or content, discarding", "angle", angle.Title)
		return nil
	}

	slug := parsed.Slug
	if slug == "" {
		slug = Slugify(angle.Title)
	}

	tags := parsed.Tags
	if len(tags) == 0 {
		tags = defaultTags
	}

	article := &model.Article{
		ID:       uuid.NewString(),
		Title:    parsed.Title,
		Slug:     slug,
		Excerpt:  parsed.Excerpt,
		Content:  parsed.Content,
		Author:   model.AgentAuthor,
		Date:     w.now().UTC(),
		Tags:     tags,
		ImageURL: w.imageURL(parsed.Title, tags),
	}

	if len(results) > 0 {
		article.SourceURL = results[0].URL
	}

	return article
}

// imageURL composes a text-to-image fetch URL from the title, tags, and fixed
// style keywords. The random seed keeps similar titles from colliding on an
// image cache key; the URL is presentational only.
func (w *Writer) imageURL(title string, tags []string) string {
	prompt := fmt.Sprintf("%s, %s, cinematic lighting, highly detailed, 8k, tech news style, futuristic",
		title, strings.Join(tags, ", "))

	return fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=1280&height=720&nologo=true&seed=%d&model=flux",
		url.PathEscape(prompt), w.seed(),
	)
}

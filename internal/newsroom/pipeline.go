package newsroom

import (
	"context"
	"log/slog"

	"newsroom/internal/model"
	"newsroom/pkg/search"
)

type AngleSource interface {
	Brainstorm(ctx context.Context) []model.Angle
}

type ArticleWriter interface {
	Write(ctx context.Context, angle model.Angle, results []model.SearchResult) *model.Article
}

type ArticleStore interface {
	Upsert(article model.Article) error
}

// Pipeline runs the newsroom end to end: brainstorm once, then research,
// write, and store one article per angle. Angles are processed strictly in
// brainstorm order; a single angle's failure never aborts the run.
type Pipeline struct {
	angles AngleSource
	search search.Client
	writer ArticleWriter
	store  ArticleStore
	gate   Gate
}

func NewPipeline(angles AngleSource, searchClient search.Client, writer ArticleWriter, store ArticleStore, gate Gate) *Pipeline {
	return &Pipeline{
		angles: angles,
		search: searchClient,
		writer: writer,
		store:  store,
		gate:   gate,
	}
}

// Run returns the articles that were written and stored, in processing order.
// The only fatal condition is an empty angle list; partial failures are
// logged and skipped.
func (p *Pipeline) Run(ctx context.Context) []model.Article {
	angles := p.angles.Brainstorm(ctx)
	if len(angles) == 0 {
		slog.Error("no angles to process, aborting run")
		return []model.Article{}
	}

	slog.Info("newsroom run started", "angles", len(angles))

	produced := make([]model.Article, 0, len(angles))
	failed := 0

	for i, angle := range angles {
		if err := p.gate.Wait(ctx); err != nil {
			slog.Warn("run cancelled", "processed", i, "error", err)
			break
		}

		slog.Info("processing angle", "index", i+1, "total", len(angles), "title", angle.Title)

		results := p.search.Search(ctx, angle.SearchQuery)

		article := p.writer.Write(ctx, angle, results)
		if article == nil {
			slog.Warn("angle produced no article, skipping", "title", angle.Title)
			failed++
			continue
		}

		// A failed write is skipped, not retried: the next run upserts the
		// same slug anyway.
		if err := p.store.Upsert(*article); err != nil {
			slog.Error("failed to store article, skipping", "slug", article.Slug, "error", err)
			failed++
			continue
		}

		slog.Info("article stored", "slug", article.Slug, "title", article.Title)
		produced = append(produced, *article)
	}

	slog.Info("newsroom run complete", "produced", len(produced), "failed", failed)

	return produced
}

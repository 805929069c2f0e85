package repository

import (
	"database/sql"
	"encoding/json"

	"newsroom/internal/model"
)

// ArticleRepository is the Postgres-backed article store. It carries the same
// contract as FileStore: upsert keyed by slug, date-descending listing,
// nil for a missing slug.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Upsert(article model.Article) error {
	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO article(id, title, slug, excerpt, content, author, date, tags, image_url, source_url)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (slug) DO UPDATE SET
			id = EXCLUDED.id,
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			author = EXCLUDED.author,
			date = EXCLUDED.date,
			tags = EXCLUDED.tags,
			image_url = EXCLUDED.image_url,
			source_url = EXCLUDED.source_url
	`, article.ID, article.Title, article.Slug, article.Excerpt, article.Content,
		article.Author, article.Date, tags, article.ImageURL, article.SourceURL)

	return err
}

func (r *ArticleRepository) ListAll() ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, slug, excerpt, content, author, date, tags, image_url, source_url
		FROM article
		ORDER BY date DESC, slug
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetBySlug(slug string) (*model.Article, error) {
	row := r.db.QueryRow(`
		SELECT id, title, slug, excerpt, content, author, date, tags, image_url, source_url
		FROM article
		WHERE slug = $1
	`, slug)

	a, err := scanArticle(row.Scan)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func scanArticle(scan func(dest ...any) error) (model.Article, error) {
	var a model.Article
	var tagsJSON []byte

	err := scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.Author,
		&a.Date, &tagsJSON, &a.ImageURL, &a.SourceURL)
	if err != nil {
		return model.Article{}, err
	}

	if err := json.Unmarshal(tagsJSON, &a.Tags); err != nil {
		return model.Article{}, err
	}

	return a, nil
}

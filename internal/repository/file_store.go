package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"newsroom/internal/model"
)

// FileStore persists the whole article collection as one JSON file, keyed by
// slug. Reads of a missing or corrupt file yield an empty collection (a cold
// store is not an error); writes go through a temp file and rename so a
// concurrent reader never observes a partially written collection.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Upsert replaces the article with the same slug if one exists, otherwise
// appends, then rewrites the collection.
func (s *FileStore) Upsert(article model.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.read()

	replaced := false
	for i, a := range articles {
		if a.Slug == article.Slug {
			articles[i] = article
			replaced = true
			break
		}
	}
	if !replaced {
		articles = append(articles, article)
	}

	return s.write(articles)
}

// ListAll returns every stored article sorted by date descending; equal dates
// keep their storage order.
func (s *FileStore) ListAll() ([]model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := s.read()
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})

	return articles, nil
}

// GetBySlug returns nil when no article carries the slug.
func (s *FileStore) GetBySlug(slug string) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.read() {
		if a.Slug == slug {
			return &a, nil
		}
	}

	return nil, nil
}

func (s *FileStore) read() []model.Article {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read article store, treating as empty", "path", s.path, "error", err)
		}
		return nil
	}

	var articles []model.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		slog.Error("article store is corrupt, treating as empty", "path", s.path, "error", err)
		return nil
	}

	return articles
}

func (s *FileStore) write(articles []model.Article) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode article store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "news-store-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write article store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace article store: %w", err)
	}

	return nil
}

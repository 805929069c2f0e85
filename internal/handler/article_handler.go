package handler

import (
	"log/slog"
	"net/http"
	"time"

	"newsroom/internal/model"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	ListAll() ([]model.Article, error)
	GetBySlug(slug string) (*model.Article, error)
}

type ArticleHandler struct {
	store ArticleStore
}

func NewArticleHandler(store ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Author:    a.Author,
		Date:      a.Date.Format(time.RFC3339),
		Tags:      a.Tags,
		ImageURL:  a.ImageURL,
		SourceURL: a.SourceURL,
	}
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.store.ListAll()
	if err != nil {
		slog.Error("error listing articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	res := ArticleListResponse{
		Articles: make([]ArticleResponse, 0, len(articles)),
		Total:    len(articles),
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.store.GetBySlug(slug)
	if err != nil {
		slog.Error("error fetching article", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.store.ListAll()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  "reachable",
	})
}

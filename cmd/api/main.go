package main

import (
	"log"
	"log/slog"
	"os"

	"newsroom/db"
	"newsroom/internal/handler"
	"newsroom/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var store handler.ArticleStore
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		store = repository.NewArticleRepository(db.DB)
	} else {
		path := os.Getenv("NEWS_STORE_PATH")
		if path == "" {
			path = "./data/news-store.json"
		}
		store = repository.NewFileStore(path)
	}

	articleHandler := handler.NewArticleHandler(store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/articles", articleHandler.ListArticles)
	r.GET("/articles/:slug", articleHandler.GetArticle)
	r.GET("/health", articleHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

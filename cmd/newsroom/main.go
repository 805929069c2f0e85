package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsroom/db"
	"newsroom/internal/newsroom"
	"newsroom/internal/repository"
	"newsroom/pkg/llm"
	"newsroom/pkg/search"

	"github.com/joho/godotenv"
)

const (
	defaultStorePath = "./data/news-store.json"
	angleDelay       = 2 * time.Second
	runLockTTL       = 10 * time.Minute
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var client llm.Client
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client = llm.NewAnthropicClient(key)
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client = llm.NewOpenAIClient(key)
	} else {
		slog.Error("no LLM API key configured")
		return
	}
	slog.Info("language model selected", "model", client.ModelName())

	searchClient := search.NewBraveClient(os.Getenv("BRAVE_API_KEY"))

	var store newsroom.ArticleStore
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		store = repository.NewArticleRepository(db.DB)
	} else {
		path := os.Getenv("NEWS_STORE_PATH")
		if path == "" {
			path = defaultStorePath
		}
		store = repository.NewFileStore(path)
	}

	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		acquired, err := db.AcquireRunLock(runLockTTL)
		if err != nil {
			log.Fatalf("error acquiring run lock: %v", err)
		}
		if !acquired {
			slog.Warn("another newsroom run is in progress, exiting")
			return
		}
		defer db.ReleaseRunLock()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline := newsroom.NewPipeline(
		newsroom.NewBrainstormer(client),
		searchClient,
		newsroom.NewWriter(client),
		store,
		newsroom.NewIntervalGate(angleDelay),
	)

	articles := pipeline.Run(ctx)

	slog.Info("newsroom finished", "articles", len(articles))
}

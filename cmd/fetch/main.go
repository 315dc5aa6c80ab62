package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Javirum/news-summarizer/db"
	"github.com/Javirum/news-summarizer/internal/cache"
	"github.com/Javirum/news-summarizer/internal/config"
	"github.com/Javirum/news-summarizer/internal/cost"
	"github.com/Javirum/news-summarizer/internal/repository"
	"github.com/Javirum/news-summarizer/internal/summarizer"
	"github.com/Javirum/news-summarizer/pkg/llm"
	"github.com/Javirum/news-summarizer/pkg/news"
)

func main() {
	category := flag.String("category", "technology", "news category to fetch")
	maxArticles := flag.Int("max", 5, "maximum number of articles to process")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("error opening DB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewArticleRepository(conn)
	responseCache := cache.Open(cfg.CacheDir)
	tracker := cost.NewTracker()

	pipeline := summarizer.New(
		responseCache,
		tracker,
		repo,
		llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		cfg.DailyBudget,
	)

	sources := []news.Client{news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.RequestTimeout)}
	if cfg.FinnhubAPIKey != "" {
		sources = append(sources, news.NewFinnhubClient(cfg.FinnhubAPIKey))
	}

	batch := summarizer.NewBatch(sources, pipeline)

	records, err := batch.Run(context.Background(), *category, *maxArticles)
	if err != nil {
		log.Fatalf("error fetching articles: %v", err)
	}

	stats := responseCache.Stats()
	summary := tracker.GetSummary()

	slog.Info("batch complete",
		"category", *category,
		"processed", len(records),
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
		"hit_rate", stats.HitRate(),
		"requests", summary.TotalRequests,
		"total_cost", summary.TotalCost,
	)
}

package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Javirum/news-summarizer/db"
	"github.com/Javirum/news-summarizer/internal/cache"
	"github.com/Javirum/news-summarizer/internal/config"
	"github.com/Javirum/news-summarizer/internal/cost"
	"github.com/Javirum/news-summarizer/internal/handler"
	"github.com/Javirum/news-summarizer/internal/repository"
	"github.com/Javirum/news-summarizer/internal/summarizer"
	"github.com/Javirum/news-summarizer/pkg/llm"
	"github.com/Javirum/news-summarizer/pkg/news"
)

func main() {

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

	articleHandler := handler.NewArticleHandler(repo)
	statsHandler := handler.NewStatsHandler(responseCache, tracker)
	fetchHandler := handler.NewFetchHandler(batch)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/articles", articleHandler.GetArticles)
	r.GET("/articles/:id", articleHandler.GetArticle)
	r.GET("/trends", articleHandler.GetTrends)
	r.GET("/stats", statsHandler.GetStats)
	r.POST("/fetch", fetchHandler.PostFetch)
	r.GET("/health", articleHandler.GetHealth)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultCacheDir       = ".cache"
	defaultDBPath         = "news_summarizer.db"
	defaultDailyBudget    = 5.00
	defaultTimeout        = 30 * time.Second
	defaultPort           = "8080"
)

// Config carries all process configuration. It is built once at startup and
// passed into component constructors; components never read the environment
// themselves.
type Config struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	NewsAPIKey      string
	FinnhubAPIKey   string

	OpenAIModel    string
	AnthropicModel string

	CacheDir string
	DBPath   string

	DailyBudget    float64
	RequestTimeout time.Duration

	Port        string
	FrontendURL string
}

// Load builds a Config from the environment and validates required keys.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		FinnhubAPIKey:   os.Getenv("FINNHUB_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", defaultOpenAIModel),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", defaultAnthropicModel),
		CacheDir:        getEnv("CACHE_DIR", defaultCacheDir),
		DBPath:          getEnv("DB_PATH", defaultDBPath),
		DailyBudget:     defaultDailyBudget,
		RequestTimeout:  defaultTimeout,
		Port:            getEnv("PORT", defaultPort),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}

	if v := os.Getenv("DAILY_BUDGET"); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DAILY_BUDGET %q: %w", v, err)
		}
		cfg.DailyBudget = budget
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	var missing []string
	for _, kv := range []struct{ name, value string }{
		{"OPENAI_API_KEY", cfg.OpenAIAPIKey},
		{"ANTHROPIC_API_KEY", cfg.AnthropicAPIKey},
		{"NEWS_API_KEY", cfg.NewsAPIKey},
	} {
		if kv.value == "" {
			missing = append(missing, kv.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

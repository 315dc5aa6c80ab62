package handler

import "github.com/Javirum/news-summarizer/internal/cost"

type ArticleResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Source            string `json:"source"`
	URL               string `json:"url"`
	Summary           string `json:"summary"`
	Sentiment         string `json:"sentiment"`
	SentimentCategory string `json:"sentiment_category"`
	PublishedAt       string `json:"published_at,omitempty"`
	ProcessedAt       string `json:"processed_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Query    string            `json:"query,omitempty"`
}

type TrendsResponse struct {
	Total           int            `json:"total"`
	SentimentCounts map[string]int `json:"sentiment_counts"`
	SourceCounts    map[string]int `json:"source_counts"`
	DateCounts      map[string]int `json:"date_counts"`
}

type CacheStatsResponse struct {
	Hits    int     `json:"hits"`
	Misses  int     `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

type StatsResponse struct {
	Cache CacheStatsResponse `json:"cache"`
	Cost  cost.Summary       `json:"cost"`
}

type FetchRequest struct {
	Category    string `json:"category"`
	MaxArticles int    `json:"max_articles"`
}

type FetchResponse struct {
	Category  string `json:"category"`
	Processed int    `json:"processed"`
}

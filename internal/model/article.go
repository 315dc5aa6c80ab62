package model

import "time"

// Article is the normalized shape a news source client returns.
type Article struct {
	Title       string
	Description string
	Content     string
	URL         string
	Source      string
	PublishedAt time.Time
}

// ArticleRecord is the processed form of an article as persisted in the
// store. URL is the unique key; a later write for the same URL replaces the
// earlier record in place.
type ArticleRecord struct {
	ID          int64
	Title       string
	Source      string
	URL         string
	Summary     string
	Sentiment   string
	PublishedAt string
	ProcessedAt time.Time
}

package news

import "github.com/Javirum/news-summarizer/internal/model"

// Client fetches top headlines for a category from one news source.
type Client interface {
	FetchTopHeadlines(category string, max int) ([]model.Article, error)
	Name() string
}

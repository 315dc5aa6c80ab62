package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"github.com/Javirum/news-summarizer/internal/model"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// Finnhub has its own category vocabulary; anything unmapped becomes general
// market news.
var finnhubCategories = map[string]string{
	"business":   "general",
	"technology": "general",
	"crypto":     "crypto",
	"forex":      "forex",
	"merger":     "merger",
}

func (c *FinnhubClient) FetchTopHeadlines(category string, max int) ([]model.Article, error) {
	fhCategory, ok := finnhubCategories[category]
	if !ok {
		fhCategory = "general"
	}

	res, _, err := c.client.MarketNews(context.Background()).Category(fhCategory).Execute()
	if err != nil {
		return nil, err
	}

	var articles []model.Article
	for _, item := range res {
		if len(articles) >= max {
			break
		}

		a := model.Article{Source: c.Name()}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Summary != nil {
			a.Description = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		if item.Source != nil && *item.Source != "" {
			a.Source = *item.Source
		}

		articles = append(articles, a)
	}

	return articles, nil
}

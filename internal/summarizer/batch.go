package summarizer

import (
	"context"
	"log/slog"

	"github.com/Javirum/news-summarizer/internal/model"
	"github.com/Javirum/news-summarizer/pkg/news"
)

// Batch ties the configured news sources to the summarization pipeline.
type Batch struct {
	sources  []news.Client
	pipeline *Summarizer
}

func NewBatch(sources []news.Client, pipeline *Summarizer) *Batch {
	return &Batch{sources: sources, pipeline: pipeline}
}

// Run fetches up to maxArticles headlines for category across the sources in
// order and runs them through the pipeline. A source failure is logged and
// the next source is tried; the error surfaces only when nothing was fetched.
func (b *Batch) Run(ctx context.Context, category string, maxArticles int) ([]model.ArticleRecord, error) {
	var fetched []model.Article
	var firstErr error

	for _, source := range b.sources {
		remaining := maxArticles - len(fetched)
		if remaining <= 0 {
			break
		}

		articles, err := source.FetchTopHeadlines(category, remaining)
		if err != nil {
			slog.Error("error fetching articles", "source", source.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		fetched = append(fetched, articles...)
	}

	if len(fetched) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return b.pipeline.ProcessArticles(ctx, fetched), nil
}

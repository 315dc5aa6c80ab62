package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Javirum/news-summarizer/internal/cache"
	"github.com/Javirum/news-summarizer/internal/cost"
	"github.com/Javirum/news-summarizer/internal/model"
	"github.com/Javirum/news-summarizer/pkg/llm"
)

const summaryPromptFmt = `Summarize this news article in 2-3 sentences. Keep the key facts: names, numbers, dates.

Title: %s

%s`

const sentimentPromptFmt = `Analyze the sentiment of this news article. Briefly explain the tone, then finish with a single line in the form "Overall sentiment: X" where X is one of: positive, negative, neutral, mixed.

Title: %s
Summary: %s`

// ArticleStore persists processed articles.
type ArticleStore interface {
	Save(*model.ArticleRecord) error
}

// Summarizer runs one fetched article through cache lookup, the two LLM
// vendors and the store. The cache and cost tracker are owned by a single
// Summarizer for the lifetime of the process.
type Summarizer struct {
	cache     *cache.ResponseCache
	costs     *cost.Tracker
	store     ArticleStore
	summary   llm.Client
	sentiment llm.Client
	budget    float64
}

func New(c *cache.ResponseCache, t *cost.Tracker, store ArticleStore, summary, sentiment llm.Client, dailyBudget float64) *Summarizer {
	return &Summarizer{
		cache:     c,
		costs:     t,
		store:     store,
		summary:   summary,
		sentiment: sentiment,
		budget:    dailyBudget,
	}
}

// SummarizeArticle resolves one article to a stored record. A cache hit
// returns the cached result verbatim without spending on LLM calls; a miss
// spends one summarization call and one sentiment call, then writes through
// to the cache and the store. On any LLM failure nothing is cached or stored.
func (s *Summarizer) SummarizeArticle(ctx context.Context, article model.Article) (*model.ArticleRecord, error) {
	if result, ok := s.cache.Get(article.URL); ok {
		record := buildRecord(article, result)
		// A hit still re-upserts the store so the durable record set
		// converges with the cache.
		if err := s.store.Save(record); err != nil {
			return nil, fmt.Errorf("saving cached article: %w", err)
		}
		return record, nil
	}

	if err := s.costs.CheckBudget(s.budget); err != nil {
		return nil, err
	}

	content := article.Content
	if content == "" {
		content = article.Description
	}

	summaryText, err := s.complete(ctx, s.summary, fmt.Sprintf(summaryPromptFmt, article.Title, content))
	if err != nil {
		return nil, fmt.Errorf("summarization: %w", err)
	}

	sentimentText, err := s.complete(ctx, s.sentiment, fmt.Sprintf(sentimentPromptFmt, article.Title, summaryText))
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	result := cache.Result{Summary: summaryText, Sentiment: sentimentText}
	if err := s.cache.Set(article.URL, result); err != nil {
		return nil, fmt.Errorf("caching result: %w", err)
	}

	record := buildRecord(article, result)
	if err := s.store.Save(record); err != nil {
		return nil, fmt.Errorf("saving article: %w", err)
	}

	return record, nil
}

// ProcessArticles runs the per-article pipeline sequentially and returns the
// successfully processed subset. One article's failure does not abort the
// rest; once the budget ceiling is hit no further articles are attempted.
func (s *Summarizer) ProcessArticles(ctx context.Context, articles []model.Article) []model.ArticleRecord {
	var processed []model.ArticleRecord
	for _, article := range articles {
		record, err := s.SummarizeArticle(ctx, article)
		if err != nil {
			var budgetErr *cost.BudgetExceededError
			if errors.As(err, &budgetErr) {
				slog.Warn("daily budget exceeded, stopping batch",
					"spent", budgetErr.Spent, "limit", budgetErr.Limit)
				break
			}

			slog.Error("error processing article", "url", article.URL, "error", err)
			continue
		}
		processed = append(processed, *record)
	}
	return processed
}

func (s *Summarizer) complete(ctx context.Context, client llm.Client, prompt string) (string, error) {
	resp, err := client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	inputTokens := resp.InputTokens
	if inputTokens == 0 {
		inputTokens = cost.EstimateTokens(prompt)
	}
	outputTokens := resp.OutputTokens
	if outputTokens == 0 {
		outputTokens = cost.EstimateTokens(resp.Text)
	}

	if _, err := s.costs.TrackRequest(client.Provider(), client.Model(), inputTokens, outputTokens); err != nil {
		return "", err
	}

	return resp.Text, nil
}

func buildRecord(article model.Article, result cache.Result) *model.ArticleRecord {
	record := &model.ArticleRecord{
		Title:     article.Title,
		Source:    article.Source,
		URL:       article.URL,
		Summary:   result.Summary,
		Sentiment: result.Sentiment,
	}
	if !article.PublishedAt.IsZero() {
		record.PublishedAt = article.PublishedAt.Format(time.RFC3339)
	}
	return record
}

package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/Javirum/news-summarizer/internal/model"
	"github.com/Javirum/news-summarizer/pkg/news"
)

type fakeSource struct {
	name     string
	articles []model.Article
	err      error

	gotCategory string
	gotMax      int
}

func (f *fakeSource) FetchTopHeadlines(category string, max int) ([]model.Article, error) {
	f.gotCategory = category
	f.gotMax = max
	if f.err != nil {
		return nil, f.err
	}
	if len(f.articles) > max {
		return f.articles[:max], nil
	}
	return f.articles, nil
}

func (f *fakeSource) Name() string { return f.name }

func TestBatchRun_FillsFromSourcesInOrder(t *testing.T) {
	pipeline, _, _, _, _ := newTestPipeline(t, 5.00)

	first := &fakeSource{name: "one", articles: []model.Article{
		testArticle("https://example.com/1"),
		testArticle("https://example.com/2"),
	}}
	second := &fakeSource{name: "two", articles: []model.Article{
		testArticle("https://example.com/3"),
	}}

	batch := NewBatch([]news.Client{first, second}, pipeline)

	records, err := batch.Run(context.Background(), "technology", 3)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(records))
	assert.Equal(t, "technology", first.gotCategory)
	assert.Equal(t, 3, first.gotMax)
	assert.Equal(t, 1, second.gotMax)
}

func TestBatchRun_SourceFailureFallsThrough(t *testing.T) {
	pipeline, _, _, _, _ := newTestPipeline(t, 5.00)

	broken := &fakeSource{name: "broken", err: errors.New("upstream down")}
	working := &fakeSource{name: "working", articles: []model.Article{
		testArticle("https://example.com/1"),
	}}

	batch := NewBatch([]news.Client{broken, working}, pipeline)

	records, err := batch.Run(context.Background(), "business", 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(records))
}

func TestBatchRun_AllSourcesFailed(t *testing.T) {
	pipeline, _, _, _, _ := newTestPipeline(t, 5.00)

	fetchErr := errors.New("upstream down")
	broken := &fakeSource{name: "broken", err: fetchErr}

	batch := NewBatch([]news.Client{broken}, pipeline)

	_, err := batch.Run(context.Background(), "business", 2)

	assert.Equal(t, fetchErr, err)
}

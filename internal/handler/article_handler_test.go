package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Javirum/news-summarizer/internal/model"
)

type fakeStore struct {
	all        []model.ArticleRecord
	found      []model.ArticleRecord
	article    *model.ArticleRecord
	count      int
	err        error
	gotKeyword string
}

func (f *fakeStore) GetAll() ([]model.ArticleRecord, error) {
	return f.all, f.err
}

func (f *fakeStore) Search(keyword string) ([]model.ArticleRecord, error) {
	f.gotKeyword = keyword
	return f.found, f.err
}

func (f *fakeStore) GetByID(id int64) (*model.ArticleRecord, error) {
	return f.article, f.err
}

func (f *fakeStore) Count() (int, error) {
	return f.count, f.err
}

func newTestRouter(store ArticleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(store)
	r.GET("/articles", h.GetArticles)
	r.GET("/articles/:id", h.GetArticle)
	r.GET("/trends", h.GetTrends)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetArticles_ReturnsAll(t *testing.T) {
	store := &fakeStore{
		all: []model.ArticleRecord{
			{ID: 1, Title: "Test headline", Sentiment: "Overall sentiment: positive", ProcessedAt: time.Now()},
		},
	}

	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Test headline", res.Articles[0].Title)
	assert.Equal(t, "positive", res.Articles[0].SentimentCategory)
}

func TestGetArticles_Search(t *testing.T) {
	store := &fakeStore{
		found: []model.ArticleRecord{
			{ID: 2, Title: "Kubernetes release"},
		},
	}

	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?q=kubernetes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kubernetes", store.gotKeyword)

	var res ArticleListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "kubernetes", res.Query)
	assert.Equal(t, 1, res.Total)
}

func TestGetArticles_DBError(t *testing.T) {
	store := &fakeStore{err: errors.New("DB down")}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetArticle_Found(t *testing.T) {
	store := &fakeStore{
		article: &model.ArticleRecord{ID: 7, Title: "Single article"},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "Single article", res.Title)
}

func TestGetArticle_NotFound(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle_InvalidID(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrends(t *testing.T) {
	day := time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		all: []model.ArticleRecord{
			{Sentiment: "Overall sentiment: positive", Source: "Reuters", ProcessedAt: day},
			{Sentiment: "Overall sentiment: positive", Source: "Reuters", ProcessedAt: day},
			{Sentiment: "a gloomy, negative piece", Source: "AP", ProcessedAt: day.AddDate(0, 0, 1)},
			{Sentiment: "unclear", Source: "", ProcessedAt: day},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/trends", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res TrendsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.SentimentCounts["positive"])
	assert.Equal(t, 1, res.SentimentCounts["negative"])
	assert.Equal(t, 1, res.SentimentCounts["unknown"])
	assert.Equal(t, 2, res.SourceCounts["Reuters"])
	assert.Equal(t, 1, res.SourceCounts["Unknown"])
	assert.Equal(t, 3, res.DateCounts["2026-02-26"])
	assert.Equal(t, 1, res.DateCounts["2026-02-27"])
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeStore{count: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

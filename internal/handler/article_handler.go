package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Javirum/news-summarizer/internal/model"
	"github.com/Javirum/news-summarizer/internal/sentiment"
)

// ArticleStore is the read side of the article repository.
type ArticleStore interface {
	GetAll() ([]model.ArticleRecord, error)
	Search(keyword string) ([]model.ArticleRecord, error)
	GetByID(id int64) (*model.ArticleRecord, error)
	Count() (int, error)
}

type ArticleHandler struct {
	repository ArticleStore
}

func NewArticleHandler(repository ArticleStore) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		articles []model.ArticleRecord
		err      error
	)
	if query != "" {
		articles, err = h.repository.Search(query)
	} else {
		articles, err = h.repository.GetAll()
	}

	if err != nil {
		slog.Error("error fetching articles", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ArticleListResponse{Total: len(articles), Query: query}
	for _, a := range articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid article id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.repository.GetByID(articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func (h *ArticleHandler) GetTrends(c *gin.Context) {
	articles, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching articles for trends", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := TrendsResponse{
		Total:           len(articles),
		SentimentCounts: map[string]int{},
		SourceCounts:    map[string]int{},
		DateCounts:      map[string]int{},
	}

	for _, a := range articles {
		res.SentimentCounts[sentiment.Extract(a.Sentiment)]++

		source := a.Source
		if source == "" {
			source = "Unknown"
		}
		res.SourceCounts[source]++

		day := "unknown"
		if !a.ProcessedAt.IsZero() {
			day = a.ProcessedAt.Format("2006-01-02")
		}
		res.DateCounts[day]++
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toArticleResponse(a model.ArticleRecord) ArticleResponse {
	return ArticleResponse{
		ID:                a.ID,
		Title:             a.Title,
		Source:            a.Source,
		URL:               a.URL,
		Summary:           a.Summary,
		Sentiment:         a.Sentiment,
		SentimentCategory: sentiment.Extract(a.Sentiment),
		PublishedAt:       a.PublishedAt,
		ProcessedAt:       a.ProcessedAt.Format(time.RFC3339),
	}
}

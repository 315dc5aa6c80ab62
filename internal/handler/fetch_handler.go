package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javirum/news-summarizer/internal/model"
)

const (
	defaultCategory    = "technology"
	defaultMaxArticles = 3
	maxArticlesCeiling = 10
)

// BatchRunner triggers a fetch-and-summarize batch.
type BatchRunner interface {
	Run(ctx context.Context, category string, maxArticles int) ([]model.ArticleRecord, error)
}

type FetchHandler struct {
	runner BatchRunner
}

func NewFetchHandler(runner BatchRunner) *FetchHandler {
	return &FetchHandler{runner: runner}
}

func (h *FetchHandler) PostFetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("invalid fetch request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Category == "" {
		req.Category = defaultCategory
	}
	if req.MaxArticles < 1 {
		req.MaxArticles = defaultMaxArticles
	}
	if req.MaxArticles > maxArticlesCeiling {
		req.MaxArticles = maxArticlesCeiling
	}

	records, err := h.runner.Run(c.Request.Context(), req.Category, req.MaxArticles)
	if err != nil {
		slog.Error("error running fetch batch", "category", req.Category, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Fetch failed"})
		return
	}

	c.JSON(http.StatusOK, FetchResponse{
		Category:  req.Category,
		Processed: len(records),
	})
}

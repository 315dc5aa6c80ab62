package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javirum/news-summarizer/internal/cache"
	"github.com/Javirum/news-summarizer/internal/cost"
)

// StatsHandler reports process-lifetime cache and spend counters.
type StatsHandler struct {
	cache *cache.ResponseCache
	costs *cost.Tracker
}

func NewStatsHandler(c *cache.ResponseCache, t *cost.Tracker) *StatsHandler {
	return &StatsHandler{cache: c, costs: t}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := h.cache.Stats()

	c.JSON(http.StatusOK, StatsResponse{
		Cache: CacheStatsResponse{
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			HitRate: stats.HitRate(),
		},
		Cost: h.costs.GetSummary(),
	})
}

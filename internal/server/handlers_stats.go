package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) wasteStats(c *gin.Context) {
	stats, err := h.svcs.Stats.WasteStats(c.Request.Context())
	if err != nil {
		h.internalError(c, "waste stats", err)
		return
	}
	// Older clients only read the trend and summary.
	c.JSON(http.StatusOK, gin.H{
		"trend":   stats.Trend,
		"summary": stats.Summary,
	})
}

func (h *handlers) enhancedWasteStats(c *gin.Context) {
	stats, err := h.svcs.Stats.WasteStats(c.Request.Context())
	if err != nil {
		h.internalError(c, "waste stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

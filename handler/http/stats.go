package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/src/core/identity"
	"jobtrack/src/core/job"
)

// GetStats handles GET /stats with per-status counts, zero-filled.
func (h *Handler) GetStats(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	summary, err := h.statsService.Summary(c.Request.Context(), ownerID)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, summary)
}

// GetCharts handles GET /charts with the trailing twelve months of
// applications bucketed per calendar month.
func (h *Handler) GetCharts(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	series, err := h.statsService.MonthlySeries(c.Request.Context(), ownerID)
	if err != nil {
		sendError(c, err)
		return
	}

	// An owner with no applications gets an empty array, not null.
	if series == nil {
		series = []job.MonthCount{}
	}

	sendJSON(c, http.StatusOK, series)
}

// CheckHealth handles GET /health; it is the only unauthenticated endpoint
// besides /metrics.
func (h *Handler) CheckHealth(c *gin.Context) {
	status := h.sysService.CheckHealth(c.Request.Context())

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	sendJSON(c, code, status)
}

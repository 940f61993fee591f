package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobtrack/src/core/identity"
	"jobtrack/src/core/job"
)

type Handler struct {
	jobService   job.Service
	statsService job.StatsService
	sysService   job.SystemService
	verifier     identity.Verifier
}

func NewHandler(jobService job.Service, statsService job.StatsService, sysService job.SystemService, verifier identity.Verifier) *Handler {
	return &Handler{
		jobService:   jobService,
		statsService: statsService,
		sysService:   sysService,
		verifier:     verifier,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(AccessLog(), Metrics())

	r.GET("/health", h.CheckHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(AuthRequired(h.verifier))

	// Job routes
	api.POST("/jobs", h.CreateJob)
	api.GET("/jobs", h.ListJobs)
	api.GET("/jobs/:id", h.GetJob)
	api.PATCH("/jobs/:id", h.UpdateJob)
	api.DELETE("/jobs/:id", h.DeleteJob)

	// Aggregation routes
	api.GET("/stats", h.GetStats)
	api.GET("/charts", h.GetCharts)
}

// Common error response structure
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// sendError maps domain errors onto a uniform JSON error shape. The client
// performs any diversion itself from the redirect hint; the server never
// issues HTTP redirects.
func sendError(c *gin.Context, err error) {
	var verr *job.ValidationError

	switch {
	case errors.Is(err, identity.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:     "UNAUTHENTICATED",
			Message:  "no valid session",
			Redirect: "/",
		})
	case errors.Is(err, job.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:     "NOT_FOUND",
			Message:  "job not found",
			Redirect: "/jobs",
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	case errors.Is(err, job.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		})
	}
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// owner extracts the identifier resolved by the auth middleware.
func owner(c *gin.Context) (string, bool) {
	return identity.OwnerFromContext(c.Request.Context())
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobtrack/src/core/identity"
	"jobtrack/src/core/job"
)

type createJobRequest struct {
	Position string `json:"position" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=pending interview declined"`
	Mode     string `json:"mode" binding:"omitempty,oneof=full-time part-time internship"`
}

type updateJobRequest struct {
	Position *string `json:"position" binding:"omitempty,min=1"`
	Company  *string `json:"company" binding:"omitempty,min=1"`
	Location *string `json:"location" binding:"omitempty,min=1"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending interview declined"`
	Mode     *string `json:"mode" binding:"omitempty,oneof=full-time part-time internship"`
}

// CreateJob handles POST /jobs. The owner always comes from the resolved
// session; an owner field in the payload is ignored by construction.
func (h *Handler) CreateJob(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, asValidationError(err))
		return
	}

	created, err := h.jobService.Create(c.Request.Context(), ownerID, job.CreateInput{
		Position: req.Position,
		Company:  req.Company,
		Location: req.Location,
		Status:   job.Status(req.Status),
		Mode:     job.Mode(req.Mode),
	})
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusCreated, created)
}

// ListJobs handles GET /jobs with optional search, jobStatus, page and limit
// query parameters.
func (h *Handler) ListJobs(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	params := job.ListParams{
		Search: c.Query("search"),
		Status: c.DefaultQuery("jobStatus", job.StatusAll),
	}

	var err error
	if params.Page, err = intQuery(c, "page", 1); err != nil {
		sendError(c, err)
		return
	}
	if params.Limit, err = intQuery(c, "limit", job.DefaultPageSize); err != nil {
		sendError(c, err)
		return
	}

	result, err := h.jobService.List(c.Request.Context(), ownerID, params)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, result)
}

// GetJob handles GET /jobs/:id.
func (h *Handler) GetJob(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	found, err := h.jobService.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, found)
}

// UpdateJob handles PATCH /jobs/:id. Only fields present in the payload
// change.
func (h *Handler) UpdateJob(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, asValidationError(err))
		return
	}

	fields := job.UpdateFields{
		Position: req.Position,
		Company:  req.Company,
		Location: req.Location,
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		fields.Status = &status
	}
	if req.Mode != nil {
		mode := job.Mode(*req.Mode)
		fields.Mode = &mode
	}

	updated, err := h.jobService.Update(c.Request.Context(), ownerID, c.Param("id"), fields)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, updated)
}

// DeleteJob handles DELETE /jobs/:id and returns the deleted record.
func (h *Handler) DeleteJob(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		sendError(c, identity.ErrUnauthenticated)
		return
	}

	deleted, err := h.jobService.Delete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, deleted)
}

// asValidationError converts gin binding failures into the domain's
// per-field validation error so every validation failure has one shape.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &job.ValidationError{Fields: map[string]string{
			"body": err.Error(),
		}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "oneof":
			fields[name] = name + " must be one of: " + fe.Param()
		default:
			fields[name] = name + " is invalid"
		}
	}

	return &job.ValidationError{Fields: fields}
}

// intQuery parses a positive integer query parameter. An absent parameter
// falls back to the default; a present one must parse and be positive, so an
// explicit zero is rejected rather than silently treated as unset.
func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &job.ValidationError{Fields: map[string]string{
			name: name + " must be an integer",
		}}
	}
	if v < 1 {
		return 0, &job.ValidationError{Fields: map[string]string{
			name: name + " must be a positive integer",
		}}
	}
	return v, nil
}

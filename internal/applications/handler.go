package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/contract"
	"recruit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.GET("/applications/job-postings/:id", h.listByPosting)
	rg.POST("/applications/job-postings/:id", h.submit)
	rg.GET("/applications/job-postings/:id/evaluation-results", h.evaluationResults)
	rg.GET("/applications/:id/details", h.details)
	rg.PUT("/applications/:id/evaluation", h.updateEvaluation)
	rg.GET("/applications/:id/evaluation-result", h.evaluationResult)
	rg.POST("/applications/:id/evaluation-result", h.storeEvaluationResult)
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list applications")
		return
	}
	respond.OK(c, toContractList(apps))
}

func (h *Handler) listByPosting(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	apps, err := h.Svc.ListByPosting(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to list applications")
		return
	}
	respond.OK(c, toContractList(apps))
}

func (h *Handler) submit(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	var req contract.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := h.Svc.Submit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "failed to submit application")
		return
	}
	respond.Created(c, ToContract(app))
}

func (h *Handler) evaluationResults(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	entries, err := h.Svc.EvaluationResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to list evaluation results")
		return
	}
	respond.OK(c, entries)
}

func (h *Handler) details(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	app, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to load application")
		return
	}
	respond.OK(c, ToDetails(app))
}

func (h *Handler) updateEvaluation(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	var req contract.EvaluationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := h.Svc.UpdateEvaluation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "failed to update evaluation")
		return
	}
	respond.OK(c, ToContract(app))
}

func (h *Handler) evaluationResult(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	result, err := h.Svc.EvaluationResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to load evaluation result")
		return
	}
	respond.OK(c, result)
}

func (h *Handler) storeEvaluationResult(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	var result contract.EvaluationResult
	if err := c.ShouldBindJSON(&result); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid evaluation result", nil)
		return
	}
	app, err := h.Svc.StoreEvaluationResult(c.Request.Context(), c.Param("id"), result)
	if err != nil {
		writeError(c, err, "failed to store evaluation result")
		return
	}
	respond.OK(c, ToContract(app))
}

func writeError(c *gin.Context, err error, fallback string) {
	var missing contract.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		respond.MissingFields(c, "missing required fields", missing.Fields)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrPostingNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	case errors.Is(err, ErrPostingClosed):
		respond.Error(c, http.StatusConflict, "posting_closed", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

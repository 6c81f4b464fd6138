package jobpostings

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

// RegisterRoutes attaches job posting routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/job-postings", h.list)
	rg.POST("/job-postings", h.create)
	rg.GET("/job-postings/public/:id", h.public)
	rg.GET("/job-postings/:id", h.get)
	rg.PUT("/job-postings/:id", h.update)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list job postings", nil)
		return
	}
	out := make([]contract.JobPosting, 0, len(items))
	for _, item := range items {
		out = append(out, ToContract(item))
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	posting, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to load job posting")
		return
	}
	respond.OK(c, ToContract(posting))
}

func (h *Handler) public(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	posting, err := h.Svc.Public(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to load job posting")
		return
	}
	respond.OK(c, posting)
}

func (h *Handler) create(c *gin.Context) {
	var req contract.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	posting, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create job posting")
		return
	}
	respond.Created(c, ToContract(posting))
}

func (h *Handler) update(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	var req contract.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	posting, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "failed to update job posting")
		return
	}
	respond.OK(c, ToContract(posting))
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

// ToContract converts a JobPosting into its wire shape.
func ToContract(p JobPosting) contract.JobPosting {
	resumeQuestions := p.ResumeQuestions
	if resumeQuestions == nil {
		resumeQuestions = []contract.ResumeQuestion{}
	}
	coverQuestions := p.CoverLetterQuestions
	if coverQuestions == nil {
		coverQuestions = []contract.CoverLetterQuestion{}
	}
	return contract.JobPosting{
		ID:                   p.ID,
		CompanyID:            p.CompanyID,
		Title:                p.Title,
		Description:          p.Description,
		Status:               p.Status,
		TotalScore:           p.TotalScore,
		PassingScore:         p.PassingScore,
		ResumeQuestions:      resumeQuestions,
		CoverLetterQuestions: coverQuestions,
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

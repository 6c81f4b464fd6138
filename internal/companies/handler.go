package companies

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

// RegisterRoutes attaches company routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies", h.list)
	rg.POST("/companies", h.create)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list companies", nil)
		return
	}
	out := make([]contract.Company, 0, len(items))
	for _, item := range items {
		out = append(out, ToContract(item))
	}
	respond.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var req contract.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	company, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create company", nil)
		return
	}
	respond.Created(c, ToContract(company))
}

// ToContract converts a Company into its wire shape.
func ToContract(company Company) contract.Company {
	return contract.Company{
		ID:             company.ID,
		Name:           company.Name,
		BusinessNumber: company.BusinessNumber,
		Industry:       company.Industry,
		Description:    company.Description,
		Website:        company.Website,
		CreatedAt:      company.CreatedAt,
	}
}

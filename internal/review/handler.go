package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/contract"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the review service and session store.
type Handler struct {
	Svc      *Service
	Sessions *SessionStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, sessions *SessionStore) *Handler {
	return &Handler{Svc: svc, Sessions: sessions}
}

// RegisterRoutes attaches reviewer routes under /review and the public
// application form under /apply.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	r := rg.Group("/review")
	r.GET("/applications/:id", h.application)
	r.GET("/applications/:id/html", h.applicationHTML)
	r.PUT("/applications/:id/evaluation", h.decision)
	r.GET("/job-postings/:id/board", h.board)
	r.POST("/annotate", h.annotate)

	r.POST("/sessions", h.createSession)
	r.GET("/sessions/:sid", h.getSession)
	r.PUT("/sessions/:sid/tab", h.setTab)
	r.PUT("/sessions/:sid/selection", h.selectApplication)
	r.DELETE("/sessions/:sid", h.deleteSession)

	rg.GET("/apply/:id", h.publicPosting)
	rg.POST("/apply/:id", h.apply)
}

func (h *Handler) application(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	view, err := h.Svc.ApplicationReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) applicationHTML(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	view, err := h.Svc.ApplicationReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	page, err := RenderPage(view)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render review page", nil)
		return
	}
	respond.HTML(c, page)
}

type decisionRequest struct {
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

func (h *Handler) decision(c *gin.Context) {
	c.Set("applicationId", c.Param("id"))
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := h.Svc.SubmitDecision(c.Request.Context(), c.Param("id"), req.Comment, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, app)
}

func (h *Handler) board(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	tab, ok := evaluation.ParseCategory(c.Query("tab"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "tab must be in-progress, completed or not-met", nil)
		return
	}
	board, err := h.Svc.Board(c.Request.Context(), c.Param("id"), tab)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, board)
}

type annotateRequest struct {
	Text            string                      `json:"text"`
	CheckedContents []evaluation.CheckedContent `json:"checked_contents"`
}

type annotateResponse struct {
	AnswerView
	HTML string `json:"html"`
}

func (h *Handler) annotate(c *gin.Context) {
	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	view := h.Svc.Annotate(req.Text, req.CheckedContents)
	respond.OK(c, annotateResponse{AnswerView: view, HTML: evaluation.RenderHTML(view.Annotation.Segments)})
}

func (h *Handler) createSession(c *gin.Context) {
	sess := h.Sessions.Create()
	c.Set("sessionId", sess.ID())
	respond.Created(c, sess.State())
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	c.Set("sessionId", c.Param("sid"))
	sess, err := h.Sessions.Get(c.Param("sid"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return nil, false
	}
	return sess, true
}

func (h *Handler) getSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	respond.OK(c, sess.State())
}

type tabRequest struct {
	Tab string `json:"tab"`
}

func (h *Handler) setTab(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	tab, valid := evaluation.ParseCategory(req.Tab)
	if !valid {
		respond.Error(c, http.StatusBadRequest, "validation_error", "tab must be in-progress, completed or not-met", nil)
		return
	}
	sess.SetTab(tab)
	respond.OK(c, sess.State())
}

type selectionRequest struct {
	ApplicationID string `json:"application_id"`
}

// selectApplication answers with the session state once the load settles.
// Load failures are reported inside the state, not as an HTTP error.
func (h *Handler) selectApplication(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ApplicationID != "" {
		c.Set("applicationId", req.ApplicationID)
	}
	_ = sess.Select(c.Request.Context(), req.ApplicationID, h.Svc.ApplicationReview)
	respond.OK(c, sess.State())
}

func (h *Handler) deleteSession(c *gin.Context) {
	c.Set("sessionId", c.Param("sid"))
	if err := h.Sessions.Delete(c.Param("sid")); err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) publicPosting(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	posting, err := h.Svc.PublicPosting(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, posting)
}

func (h *Handler) apply(c *gin.Context) {
	c.Set("jobPostingId", c.Param("id"))
	var req contract.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	app, err := h.Svc.Apply(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, app)
}

func writeError(c *gin.Context, err error) {
	var missing contract.MissingFieldsError
	if errors.As(err, &missing) {
		respond.MissingFields(c, "필수 항목을 입력해주세요.", missing.Fields)
		return
	}
	if errors.Is(err, ErrInvalidInput) {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	message := backend.UserMessage(err)
	var be *backend.Error
	if errors.As(err, &be) && be.Status == http.StatusConflict {
		respond.Error(c, http.StatusConflict, "conflict", message, nil)
		return
	}
	switch backend.KindOf(err) {
	case backend.KindNotFound:
		respond.Error(c, http.StatusNotFound, "not_found", message, nil)
	case backend.KindValidation:
		respond.Error(c, http.StatusBadRequest, "validation_error", message, nil)
	case backend.KindUnavailable:
		respond.Error(c, http.StatusServiceUnavailable, "upstream_unavailable", message, nil)
	case "":
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	default:
		respond.Error(c, http.StatusBadGateway, "upstream_error", message, nil)
	}
}

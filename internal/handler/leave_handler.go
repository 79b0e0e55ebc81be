package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// LeaveHandler exposes the leave request lifecycle.
type LeaveHandler struct {
	service *service.LeaveService
}

// NewLeaveHandler creates a new handler.
func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: svc}
}

// List godoc
// @Summary List leave requests
// @Description Admins see all requests, teachers see their own
// @Tags Leaves
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	leaves, err := h.service.List(claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leaves, nil)
}

// Apply godoc
// @Summary File a leave request
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body dto.ApplyLeaveRequest true "Leave payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /leaves [post]
func (h *LeaveHandler) Apply(c *gin.Context) {
	var req dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave payload"))
		return
	}

	leave, err := h.service.Apply(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, leave, nil)
}

// Approve godoc
// @Summary Approve a leave request
// @Description Finalizes a pending request and drafts the notification email
// @Tags Leaves
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /leaves/{id}/approve [post]
func (h *LeaveHandler) Approve(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	decision, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision, nil)
}

// Reject godoc
// @Summary Reject a leave request
// @Tags Leaves
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /leaves/{id}/reject [post]
func (h *LeaveHandler) Reject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	decision, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision, nil)
}

// SuggestReason godoc
// @Summary Draft a leave reason
// @Description Generates a formal leave reason from a keyword, falling back to a template offline
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body dto.SuggestReasonRequest true "Keyword payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /leaves/suggest-reason [post]
func (h *LeaveHandler) SuggestReason(c *gin.Context) {
	var req dto.SuggestReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid suggestion payload"))
		return
	}

	res, err := h.service.SuggestReason(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

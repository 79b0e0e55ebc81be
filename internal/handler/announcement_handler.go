package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// AnnouncementHandler exposes announcement CRUD.
type AnnouncementHandler struct {
	service *service.AnnouncementService
}

// NewAnnouncementHandler creates a new handler.
func NewAnnouncementHandler(svc *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: svc}
}

// List godoc
// @Summary List announcements
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(), nil)
}

// Create godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.SaveAnnouncementRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.SaveAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}

	announcement, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, announcement, nil)
}

// Update godoc
// @Summary Edit an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param payload body dto.SaveAnnouncementRequest true "Announcement payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SaveAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}

	announcement, err := h.service.Update(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, announcement, nil)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

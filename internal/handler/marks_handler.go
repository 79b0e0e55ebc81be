package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// MarksHandler exposes exam marks entry and retrieval.
type MarksHandler struct {
	service *service.MarksService
}

// NewMarksHandler creates a new handler.
func NewMarksHandler(svc *service.MarksService) *MarksHandler {
	return &MarksHandler{service: svc}
}

// List godoc
// @Summary Marks for a class and exam
// @Tags Marks
// @Produce json
// @Param classId query string true "Class ID"
// @Param examId query int true "Exam ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /marks [get]
func (h *MarksHandler) List(c *gin.Context) {
	classID := c.Query("classId")
	examID, err := strconv.Atoi(c.Query("examId"))
	if classID == "" || err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classId and numeric examId required"))
		return
	}

	marks, err := h.service.ForClassExam(classID, examID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, marks, nil)
}

// Save godoc
// @Summary Save exam marks
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body dto.SaveMarksRequest true "Marks payload"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /marks [post]
func (h *MarksHandler) Save(c *gin.Context) {
	var req dto.SaveMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marks payload"))
		return
	}

	if err := h.service.Save(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

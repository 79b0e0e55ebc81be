package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// ScheduleHandler exposes timetable views.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Timetable godoc
// @Summary Timetable view
// @Description Resolves the timetable for a class (classId) or a teacher (teacherId)
// @Tags Schedule
// @Produce json
// @Param classId query string false "Class ID"
// @Param teacherId query int false "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Timetable(c *gin.Context) {
	if classID := c.Query("classId"); classID != "" {
		entries, err := h.service.ForClass(classID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, entries, nil)
		return
	}

	if raw := c.Query("teacherId"); raw != "" {
		teacherID, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "teacherId must be an integer"))
			return
		}
		if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleTeacher && claims.UserID != teacherID {
			response.Error(c, appErrors.ErrForbidden)
			return
		}
		response.JSON(c, http.StatusOK, h.service.ForTeacher(teacherID), nil)
		return
	}

	response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classId or teacherId required"))
}

// Coverage godoc
// @Summary Timetable coverage summary
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/coverage [get]
func (h *ScheduleHandler) Coverage(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Coverage(), nil)
}

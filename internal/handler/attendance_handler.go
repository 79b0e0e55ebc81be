package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// AttendanceHandler exposes attendance marking and history endpoints.
type AttendanceHandler struct {
	service *service.AttendanceService
}

// NewAttendanceHandler creates a new handler.
func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// List godoc
// @Summary Class attendance for a date
// @Tags Attendance
// @Produce json
// @Param classId query string true "Class ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param period query int false "Period (1-6, omit for all)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	classID := c.Query("classId")
	date := c.Query("date")
	if classID == "" || date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classId and date required"))
		return
	}

	period := 0
	if raw := c.Query("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "period must be an integer"))
			return
		}
		period = parsed
	}

	records, err := h.service.ForClassDate(classID, date, period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Mark godoc
// @Summary Record class attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.MarkAttendanceRequest true "Attendance payload"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	if err := h.service.Mark(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// StudentHistory godoc
// @Summary Student attendance history
// @Tags Attendance
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attendance/history [get]
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Query("studentId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "studentId must be an integer"))
		return
	}

	records, err := h.service.HistoryForStudent(studentID, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// TeacherOverview godoc
// @Summary Teacher attendance records
// @Description Admins see all teachers (optionally scoped to a month), teachers see their own history
// @Tags Attendance
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /teacher-attendance [get]
func (h *AttendanceHandler) TeacherOverview(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if claims.Role == models.RoleTeacher {
		response.JSON(c, http.StatusOK, h.service.HistoryForTeacher(claims.UserID), nil)
		return
	}
	response.JSON(c, http.StatusOK, h.service.TeacherOverview(c.Query("month")), nil)
}

// MarkTeacher godoc
// @Summary Record teacher attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.MarkTeacherAttendanceRequest true "Teacher attendance payload"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher-attendance [post]
func (h *AttendanceHandler) MarkTeacher(c *gin.Context) {
	var req dto.MarkTeacherAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher attendance payload"))
		return
	}

	if err := h.service.MarkTeacher(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/service"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/response"
)

// ReportHandler serves downloadable reports: attendance grids as CSV and
// report cards as PDF.
type ReportHandler struct {
	exports *service.ExportService
	marks   *service.MarksService
}

// NewReportHandler creates a new handler.
func NewReportHandler(exports *service.ExportService, marks *service.MarksService) *ReportHandler {
	return &ReportHandler{exports: exports, marks: marks}
}

// StudentAttendanceCSV godoc
// @Summary Monthly class attendance grid (CSV)
// @Tags Reports
// @Produce text/csv
// @Param classId query string true "Class ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reports/attendance.csv [get]
func (h *ReportHandler) StudentAttendanceCSV(c *gin.Context) {
	classID := c.Query("classId")
	if classID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classId required"))
		return
	}
	year, month, err := yearMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	grid, err := h.exports.StudentGrid(classID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.exports.RenderCSV(grid)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s-%04d-%02d.csv", classID, year, int(month))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// TeacherAttendanceCSV godoc
// @Summary Monthly teacher attendance grid (CSV)
// @Tags Reports
// @Produce text/csv
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} response.Envelope
// @Router /reports/teacher-attendance.csv [get]
func (h *ReportHandler) TeacherAttendanceCSV(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.exports.RenderCSV(h.exports.TeacherGrid(year, month))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("teacher-attendance-%04d-%02d.csv", year, int(month))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// ReportCard godoc
// @Summary Student report card (PDF)
// @Tags Reports
// @Produce application/pdf
// @Param id path int true "Student ID"
// @Param examId query int true "Exam ID"
// @Success 200 {string} string "PDF payload"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/report-card [get]
func (h *ReportHandler) ReportCard(c *gin.Context) {
	studentID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	examID, err := strconv.Atoi(c.Query("examId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "numeric examId required"))
		return
	}

	card, err := h.marks.ReportCard(studentID, examID, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.exports.ReportCardPDF(card)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report card"))
		return
	}

	filename := fmt.Sprintf("report-card-%d-exam-%d.pdf", studentID, examID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

func yearMonth(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "numeric year required")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

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

// RosterHandler serves the catalogs and the admin roster mutations.
type RosterHandler struct {
	service *service.RosterService
}

// NewRosterHandler creates a new handler.
func NewRosterHandler(svc *service.RosterService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// Classes godoc
// @Summary List classes
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *RosterHandler) Classes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Classes(), nil)
}

// ClassStudents godoc
// @Summary List students of a class
// @Tags Roster
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{id}/students [get]
func (h *RosterHandler) ClassStudents(c *gin.Context) {
	students, err := h.service.StudentsOf(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Subjects godoc
// @Summary List subjects
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *RosterHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Subjects(), nil)
}

// Exams godoc
// @Summary List exams
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *RosterHandler) Exams(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Exams(), nil)
}

// Teachers godoc
// @Summary List teachers
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *RosterHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Teachers(), nil)
}

// CreateTeacher godoc
// @Summary Register a teacher
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body dto.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /teachers [post]
func (h *RosterHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}

	teacher, err := h.service.CreateTeacher(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, teacher, nil)
}

// CreateStudent godoc
// @Summary Enroll a student
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students [post]
func (h *RosterHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}

	student, err := h.service.CreateStudent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, student, nil)
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be an integer")
	}
	return id, nil
}

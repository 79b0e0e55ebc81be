package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type attendanceStore interface {
	ClassByID(id string) (models.Class, bool)
	StudentByID(id int) (models.Student, bool)
	AttendanceForClassDate(classID, date string, period int) []models.AttendanceRecord
	AttendanceForStudent(studentID int) []models.AttendanceRecord
	RecordAttendance(rec models.AttendanceRecord)
	TeacherAttendance(monthPrefix string) []models.TeacherAttendanceRecord
	TeacherAttendanceFor(teacherID int) []models.TeacherAttendanceRecord
	RecordTeacherAttendance(rec models.TeacherAttendanceRecord)
	FindUserByID(id int) (models.User, bool)
}

// AttendanceService handles marking and reading attendance.
type AttendanceService struct {
	store     attendanceStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService builds an AttendanceService.
func NewAttendanceService(store attendanceStore, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{store: store, validator: validate, logger: logger}
}

// Mark upserts attendance for one class period on one date.
func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	if _, ok := s.store.ClassByID(req.ClassID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}

	for _, entry := range req.Entries {
		s.store.RecordAttendance(models.AttendanceRecord{
			Date:      req.Date,
			ClassID:   req.ClassID,
			Period:    req.Period,
			StudentID: entry.StudentID,
			Status:    models.AttendanceStatus(entry.Status),
		})
	}

	s.logger.Info("attendance recorded",
		zap.String("class_id", req.ClassID),
		zap.String("date", req.Date),
		zap.Int("period", req.Period),
		zap.Int("entries", len(req.Entries)))
	return nil
}

// ForClassDate lists a class's records for one date, optionally one period.
func (s *AttendanceService) ForClassDate(classID, date string, period int) ([]models.AttendanceRecord, error) {
	if _, ok := s.store.ClassByID(classID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return s.store.AttendanceForClassDate(classID, date, period), nil
}

// HistoryForStudent returns a student's attendance history. Students may
// only read their own history; staff may read anyone's.
func (s *AttendanceService) HistoryForStudent(studentID int, claims *models.JWTClaims) ([]models.AttendanceRecord, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role == models.RoleStudent && claims.UserID != studentID {
		return nil, appErrors.ErrForbidden
	}
	if _, ok := s.store.StudentByID(studentID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return s.store.AttendanceForStudent(studentID), nil
}

// HistoryForTeacher returns a teacher's own daily attendance history.
func (s *AttendanceService) HistoryForTeacher(teacherID int) []models.TeacherAttendanceRecord {
	return s.store.TeacherAttendanceFor(teacherID)
}

// TeacherOverview lists teacher attendance across the staff, optionally
// scoped to one month ("YYYY-MM", empty for all).
func (s *AttendanceService) TeacherOverview(monthPrefix string) []models.TeacherAttendanceRecord {
	return s.store.TeacherAttendance(monthPrefix)
}

// MarkTeacher upserts a teacher's daily status.
func (s *AttendanceService) MarkTeacher(ctx context.Context, req dto.MarkTeacherAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher attendance payload")
	}
	teacher, ok := s.store.FindUserByID(req.TeacherID)
	if !ok || teacher.Role != models.RoleTeacher {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	s.store.RecordTeacherAttendance(models.TeacherAttendanceRecord{
		TeacherID: req.TeacherID,
		Date:      req.Date,
		Status:    models.TeacherAttendanceStatus(req.Status),
	})
	s.logger.Info("teacher attendance recorded",
		zap.Int("teacher_id", req.TeacherID),
		zap.String("date", req.Date),
		zap.String("status", req.Status))
	return nil
}

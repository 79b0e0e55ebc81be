package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/store"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type rosterStore interface {
	Classes() []models.Class
	ClassByID(id string) (models.Class, bool)
	StudentsOf(classID string) []models.Student
	StudentByID(id int) (models.Student, bool)
	Teachers() []models.User
	TeacherName(id int) string
	Subjects() []models.Subject
	Exams() []models.Exam
	FindUserByEmail(email string, role models.UserRole) (models.User, bool)
	AddTeacher(name, email, qualifications, passwordHash string) models.User
	AddStudent(classID, name, dob string) models.Student
}

// ClassSummary is a class with its homeroom teacher resolved for display.
type ClassSummary struct {
	models.Class
	HomeroomTeacherName string `json:"homeroomTeacherName"`
}

// RosterService exposes the read catalogs and the admin-only mutations
// that grow the roster after generation.
type RosterService struct {
	store     rosterStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService builds a RosterService.
func NewRosterService(store rosterStore, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{store: store, validator: validate, logger: logger}
}

// Classes lists all classes with homeroom teacher names resolved.
func (s *RosterService) Classes() []ClassSummary {
	classes := s.store.Classes()
	summaries := make([]ClassSummary, 0, len(classes))
	for _, c := range classes {
		name := store.NotAvailable
		if c.HomeroomTeacherID != nil {
			name = s.store.TeacherName(*c.HomeroomTeacherID)
		}
		summaries = append(summaries, ClassSummary{Class: c, HomeroomTeacherName: name})
	}
	return summaries
}

// StudentsOf lists the students enrolled in one class.
func (s *RosterService) StudentsOf(classID string) ([]models.Student, error) {
	if _, ok := s.store.ClassByID(classID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return s.store.StudentsOf(classID), nil
}

// Student fetches one student by id.
func (s *RosterService) Student(id int) (*models.Student, error) {
	student, ok := s.store.StudentByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// Teachers lists all teacher accounts.
func (s *RosterService) Teachers() []models.User {
	return s.store.Teachers()
}

// Subjects lists the subject catalog.
func (s *RosterService) Subjects() []models.Subject {
	return s.store.Subjects()
}

// Exams lists the exam catalog.
func (s *RosterService) Exams() []models.Exam {
	return s.store.Exams()
}

// CreateTeacher registers a new teacher account with a hashed password.
func (s *RosterService) CreateTeacher(req dto.CreateTeacherRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	if _, exists := s.store.FindUserByEmail(req.Email, models.RoleTeacher); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a teacher with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	teacher := s.store.AddTeacher(req.Name, req.Email, req.Qualifications, string(hash))
	s.logger.Info("teacher created", zap.Int("teacher_id", teacher.ID), zap.String("email", teacher.Email))
	return &teacher, nil
}

// CreateStudent enrolls a new student into an existing class.
func (s *RosterService) CreateStudent(req dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if _, ok := s.store.ClassByID(req.ClassID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}

	student := s.store.AddStudent(req.ClassID, req.Name, req.DOB)
	s.logger.Info("student enrolled",
		zap.Int("student_id", student.ID),
		zap.String("class_id", student.ClassID))
	return &student, nil
}

package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type marksStore interface {
	ClassByID(id string) (models.Class, bool)
	ClassName(id string) string
	StudentByID(id int) (models.Student, bool)
	Subjects() []models.Subject
	ExamByID(id int) (models.Exam, bool)
	MarksFor(classID string, examID int) []models.Mark
	MarksForStudent(studentID int) []models.Mark
	SaveMark(mark models.Mark) error
}

// MarksService records exam marks and aggregates report cards.
type MarksService struct {
	store     marksStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMarksService builds a MarksService.
func NewMarksService(store marksStore, validate *validator.Validate, logger *zap.Logger) *MarksService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarksService{store: store, validator: validate, logger: logger}
}

// Save upserts marks for a class and exam. Each entry is bounded by the
// exam's maximum; the store rejects out-of-range values.
func (s *MarksService) Save(ctx context.Context, req dto.SaveMarksRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload")
	}
	if _, ok := s.store.ClassByID(req.ClassID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	if _, ok := s.store.ExamByID(req.ExamID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}

	for _, entry := range req.Entries {
		err := s.store.SaveMark(models.Mark{
			StudentID:     entry.StudentID,
			ClassID:       req.ClassID,
			SubjectID:     entry.SubjectID,
			ExamID:        req.ExamID,
			MarksObtained: entry.MarksObtained,
		})
		if err != nil {
			return err
		}
	}

	s.logger.Info("marks saved",
		zap.String("class_id", req.ClassID),
		zap.Int("exam_id", req.ExamID),
		zap.Int("entries", len(req.Entries)))
	return nil
}

// ForClassExam lists the recorded marks for a class and exam.
func (s *MarksService) ForClassExam(classID string, examID int) ([]models.Mark, error) {
	if _, ok := s.store.ClassByID(classID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	if _, ok := s.store.ExamByID(examID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	return s.store.MarksFor(classID, examID), nil
}

// ReportCard aggregates one student's marks for one exam. Subjects without
// a recorded mark are skipped: students enrolled after generation have no
// synthesized marks and that is tolerated, not an error.
func (s *MarksService) ReportCard(studentID, examID int, claims *models.JWTClaims) (*dto.ReportCard, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role == models.RoleStudent && claims.UserID != studentID {
		return nil, appErrors.ErrForbidden
	}

	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	exam, ok := s.store.ExamByID(examID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}

	bySubject := make(map[string]int)
	for _, m := range s.store.MarksForStudent(studentID) {
		if m.ExamID == examID {
			bySubject[m.SubjectID] = m.MarksObtained
		}
	}

	card := &dto.ReportCard{
		StudentID:   student.ID,
		StudentName: student.Name,
		ClassName:   s.store.ClassName(student.ClassID),
		ExamID:      exam.ID,
		ExamName:    exam.Name,
	}
	for _, subject := range s.store.Subjects() {
		obtained, ok := bySubject[subject.ID]
		if !ok {
			continue
		}
		card.Rows = append(card.Rows, dto.ReportCardRow{
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Obtained:    obtained,
			MaxMarks:    exam.MaxMarks,
		})
		card.Total += obtained
		card.MaxTotal += exam.MaxMarks
	}
	if card.MaxTotal > 0 {
		card.Percentage = float64(card.Total) / float64(card.MaxTotal) * 100
	}
	return card, nil
}

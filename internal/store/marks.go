package store

import (
	"fmt"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// MarksFor returns marks filtered by class and exam (zero values match all).
func (s *Store) MarksFor(classID string, examID int) []models.Mark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Mark
	for _, m := range s.snap.Marks {
		if (classID == "" || m.ClassID == classID) && (examID == 0 || m.ExamID == examID) {
			out = append(out, m)
		}
	}
	return out
}

// MarksForStudent returns every mark recorded for one student.
func (s *Store) MarksForStudent(studentID int) []models.Mark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Mark
	for _, m := range s.snap.Marks {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out
}

// SaveMark upserts one mark, enforcing 0 <= marksObtained <= exam.maxMarks.
func (s *Store) SaveMark(mark models.Mark) error {
	exam, ok := s.ExamByID(mark.ExamID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if mark.MarksObtained < 0 || mark.MarksObtained > exam.MaxMarks {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("marks must be between 0 and %d", exam.MaxMarks))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Marks {
		m := &s.snap.Marks[i]
		if m.StudentID == mark.StudentID && m.SubjectID == mark.SubjectID && m.ExamID == mark.ExamID {
			m.MarksObtained = mark.MarksObtained
			return nil
		}
	}
	s.snap.Marks = append(s.snap.Marks, mark)
	return nil
}

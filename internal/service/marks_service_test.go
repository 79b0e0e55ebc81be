package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type marksStoreStub struct {
	marks []models.Mark
}

func (s *marksStoreStub) ClassByID(id string) (models.Class, bool) {
	if id == "C1" {
		return models.Class{ID: "C1", Name: "Grade 1"}, true
	}
	return models.Class{}, false
}

func (s *marksStoreStub) ClassName(id string) string {
	if id == "C1" {
		return "Grade 1"
	}
	return "Unknown Class"
}

func (s *marksStoreStub) StudentByID(id int) (models.Student, bool) {
	if id == 1001 {
		return models.Student{ID: 1001, Name: "Aarav Sharma", ClassID: "C1"}, true
	}
	return models.Student{}, false
}

func (s *marksStoreStub) Subjects() []models.Subject {
	return []models.Subject{
		{ID: "S1", Name: "English"},
		{ID: "S3", Name: "Mathematics"},
		{ID: "S8", Name: "Physical Education"},
	}
}

func (s *marksStoreStub) ExamByID(id int) (models.Exam, bool) {
	if id == 1 {
		return models.Exam{ID: 1, Name: "Mid-Term Examination", MaxMarks: 100}, true
	}
	return models.Exam{}, false
}

func (s *marksStoreStub) MarksFor(classID string, examID int) []models.Mark {
	var out []models.Mark
	for _, m := range s.marks {
		if m.ClassID == classID && m.ExamID == examID {
			out = append(out, m)
		}
	}
	return out
}

func (s *marksStoreStub) MarksForStudent(studentID int) []models.Mark {
	var out []models.Mark
	for _, m := range s.marks {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out
}

func (s *marksStoreStub) SaveMark(mark models.Mark) error {
	s.marks = append(s.marks, mark)
	return nil
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: 1, Role: models.RoleAdmin}
}

func TestMarksReportCardAggregates(t *testing.T) {
	store := &marksStoreStub{marks: []models.Mark{
		{StudentID: 1001, ClassID: "C1", SubjectID: "S1", ExamID: 1, MarksObtained: 72},
		{StudentID: 1001, ClassID: "C1", SubjectID: "S3", ExamID: 1, MarksObtained: 81},
	}}
	svc := NewMarksService(store, nil, nil)

	card, err := svc.ReportCard(1001, 1, adminClaims())
	require.NoError(t, err)

	assert.Equal(t, "Aarav Sharma", card.StudentName)
	assert.Equal(t, "Grade 1", card.ClassName)
	// S8 has no mark recorded, so it is skipped rather than zero-filled.
	require.Len(t, card.Rows, 2)
	assert.Equal(t, 153, card.Total)
	assert.Equal(t, 200, card.MaxTotal)
	assert.InDelta(t, 76.5, card.Percentage, 0.001)
}

func TestMarksReportCardStudentSelfOnly(t *testing.T) {
	store := &marksStoreStub{}
	svc := NewMarksService(store, nil, nil)

	_, err := svc.ReportCard(1001, 1, &models.JWTClaims{UserID: 2002, Role: models.RoleStudent})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)

	_, err = svc.ReportCard(1001, 1, &models.JWTClaims{UserID: 1001, Role: models.RoleStudent})
	require.NoError(t, err)
}

func TestMarksSaveValidatesReferences(t *testing.T) {
	store := &marksStoreStub{}
	svc := NewMarksService(store, nil, nil)

	err := svc.Save(context.Background(), dto.SaveMarksRequest{
		ClassID: "C999", ExamID: 1,
		Entries: []dto.MarkEntry{{StudentID: 1001, SubjectID: "S1", MarksObtained: 50}},
	})
	require.Error(t, err)

	err = svc.Save(context.Background(), dto.SaveMarksRequest{
		ClassID: "C1", ExamID: 99,
		Entries: []dto.MarkEntry{{StudentID: 1001, SubjectID: "S1", MarksObtained: 50}},
	})
	require.Error(t, err)

	err = svc.Save(context.Background(), dto.SaveMarksRequest{
		ClassID: "C1", ExamID: 1,
		Entries: []dto.MarkEntry{{StudentID: 1001, SubjectID: "S1", MarksObtained: 50}},
	})
	require.NoError(t, err)
	assert.Len(t, store.marks, 1)
}

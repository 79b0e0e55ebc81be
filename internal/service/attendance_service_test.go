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

type attendanceStoreStub struct {
	records        []models.AttendanceRecord
	teacherRecords []models.TeacherAttendanceRecord
}

func (s *attendanceStoreStub) ClassByID(id string) (models.Class, bool) {
	if id == "C1" {
		return models.Class{ID: "C1", Name: "Grade 1"}, true
	}
	return models.Class{}, false
}

func (s *attendanceStoreStub) StudentByID(id int) (models.Student, bool) {
	if id == 1001 {
		return models.Student{ID: 1001, Name: "Aarav Sharma", ClassID: "C1"}, true
	}
	return models.Student{}, false
}

func (s *attendanceStoreStub) AttendanceForClassDate(classID, date string, period int) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range s.records {
		if r.ClassID == classID && r.Date == date && (period == 0 || r.Period == period) {
			out = append(out, r)
		}
	}
	return out
}

func (s *attendanceStoreStub) AttendanceForStudent(studentID int) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range s.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

func (s *attendanceStoreStub) RecordAttendance(rec models.AttendanceRecord) {
	for i := range s.records {
		r := &s.records[i]
		if r.Date == rec.Date && r.ClassID == rec.ClassID && r.Period == rec.Period && r.StudentID == rec.StudentID {
			r.Status = rec.Status
			return
		}
	}
	s.records = append(s.records, rec)
}

func (s *attendanceStoreStub) TeacherAttendance(monthPrefix string) []models.TeacherAttendanceRecord {
	return s.teacherRecords
}

func (s *attendanceStoreStub) TeacherAttendanceFor(teacherID int) []models.TeacherAttendanceRecord {
	var out []models.TeacherAttendanceRecord
	for _, r := range s.teacherRecords {
		if r.TeacherID == teacherID {
			out = append(out, r)
		}
	}
	return out
}

func (s *attendanceStoreStub) RecordTeacherAttendance(rec models.TeacherAttendanceRecord) {
	s.teacherRecords = append(s.teacherRecords, rec)
}

func (s *attendanceStoreStub) FindUserByID(id int) (models.User, bool) {
	if id == 2 {
		return models.User{ID: 2, Name: "Samaira Khan", Role: models.RoleTeacher, Status: models.UserStatusActive}, true
	}
	return models.User{}, false
}

func TestAttendanceMarkRecordsEntries(t *testing.T) {
	store := &attendanceStoreStub{}
	svc := NewAttendanceService(store, nil, nil)

	err := svc.Mark(context.Background(), dto.MarkAttendanceRequest{
		ClassID: "C1", Date: "2025-07-01", Period: 1,
		Entries: []dto.AttendanceEntry{
			{StudentID: 1001, Status: "Present"},
			{StudentID: 1002, Status: "Absent"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, store.records, 2)

	// Re-marking the same cell overwrites rather than duplicating.
	err = svc.Mark(context.Background(), dto.MarkAttendanceRequest{
		ClassID: "C1", Date: "2025-07-01", Period: 1,
		Entries: []dto.AttendanceEntry{{StudentID: 1001, Status: "Late"}},
	})
	require.NoError(t, err)
	assert.Len(t, store.records, 2)

	records, err := svc.ForClassDate("C1", "2025-07-01", 1)
	require.NoError(t, err)
	for _, r := range records {
		if r.StudentID == 1001 {
			assert.Equal(t, models.AttendanceStatusLate, r.Status)
		}
	}
}

func TestAttendanceMarkUnknownClass(t *testing.T) {
	svc := NewAttendanceService(&attendanceStoreStub{}, nil, nil)

	err := svc.Mark(context.Background(), dto.MarkAttendanceRequest{
		ClassID: "C999", Date: "2025-07-01", Period: 1,
		Entries: []dto.AttendanceEntry{{StudentID: 1001, Status: "Present"}},
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestAttendanceHistoryStudentSelfOnly(t *testing.T) {
	store := &attendanceStoreStub{records: []models.AttendanceRecord{
		{Date: "2025-07-01", ClassID: "C1", Period: 1, StudentID: 1001, Status: models.AttendanceStatusPresent},
	}}
	svc := NewAttendanceService(store, nil, nil)

	_, err := svc.HistoryForStudent(1001, &models.JWTClaims{UserID: 2002, Role: models.RoleStudent})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)

	own, err := svc.HistoryForStudent(1001, &models.JWTClaims{UserID: 1001, Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	staff, err := svc.HistoryForStudent(1001, &models.JWTClaims{UserID: 2, Role: models.RoleTeacher})
	require.NoError(t, err)
	assert.Len(t, staff, 1)
}

func TestAttendanceMarkTeacher(t *testing.T) {
	store := &attendanceStoreStub{}
	svc := NewAttendanceService(store, nil, nil)

	err := svc.MarkTeacher(context.Background(), dto.MarkTeacherAttendanceRequest{
		TeacherID: 2, Date: "2025-07-01", Status: "On Leave",
	})
	require.NoError(t, err)
	require.Len(t, store.teacherRecords, 1)
	assert.Equal(t, models.TeacherAttendanceOnLeave, store.teacherRecords[0].Status)

	err = svc.MarkTeacher(context.Background(), dto.MarkTeacherAttendanceRequest{
		TeacherID: 99, Date: "2025-07-01", Status: "Present",
	})
	require.Error(t, err)
}

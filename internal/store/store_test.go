package store

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/seed"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := seed.DefaultConfig()
	cfg.AttendanceDays = 5

	rng := rand.New(rand.NewSource(17))
	snap, err := seed.NewGenerator(cfg, rng, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)).Generate()
	require.NoError(t, err)
	return New(snap, rng)
}

func TestLeaveLifecycleTerminalStates(t *testing.T) {
	st := newTestStore(t)

	leave := st.CreateLeave(2, "Samaira Khan", "2025-08-01", "2025-08-03", "family function")
	assert.Equal(t, models.LeaveStatusPending, leave.Status)

	approved, err := st.TransitionLeave(leave.ID, models.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)

	_, err = st.TransitionLeave(leave.ID, models.LeaveStatusRejected)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)

	// Still approved after the rejected second decision.
	got, ok := st.LeaveByID(leave.ID)
	require.True(t, ok)
	assert.Equal(t, models.LeaveStatusApproved, got.Status)
}

func TestTransitionLeaveRejectsNonTerminalTarget(t *testing.T) {
	st := newTestStore(t)
	leave := st.CreateLeave(2, "Samaira Khan", "2025-08-01", "2025-08-03", "family function")

	_, err := st.TransitionLeave(leave.ID, models.LeaveStatusPending)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestTransitionLeaveUnknownID(t *testing.T) {
	st := newTestStore(t)

	_, err := st.TransitionLeave(99999, models.LeaveStatusApproved)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestLeavesNewestFirst(t *testing.T) {
	st := newTestStore(t)

	first := st.CreateLeave(2, "Samaira Khan", "2025-08-01", "2025-08-02", "a")
	second := st.CreateLeave(2, "Samaira Khan", "2025-09-01", "2025-09-02", "b")

	leaves := st.Leaves()
	require.NotEmpty(t, leaves)
	assert.Equal(t, second.ID, leaves[0].ID)
	assert.Equal(t, first.ID, leaves[1].ID)
}

func TestSaveMarkBounds(t *testing.T) {
	st := newTestStore(t)

	exams := st.Exams()
	require.NotEmpty(t, exams)
	exam := exams[0]

	classes := st.Classes()
	require.NotEmpty(t, classes)
	student := st.StudentsOf(classes[0].ID)[0]

	err := st.SaveMark(models.Mark{
		StudentID: student.ID, ClassID: classes[0].ID, SubjectID: "S1",
		ExamID: exam.ID, MarksObtained: exam.MaxMarks + 1,
	})
	require.Error(t, err)

	err = st.SaveMark(models.Mark{
		StudentID: student.ID, ClassID: classes[0].ID, SubjectID: "S1",
		ExamID: exam.ID, MarksObtained: -1,
	})
	require.Error(t, err)

	err = st.SaveMark(models.Mark{
		StudentID: student.ID, ClassID: classes[0].ID, SubjectID: "S1",
		ExamID: exam.ID, MarksObtained: exam.MaxMarks,
	})
	require.NoError(t, err)
}

func TestSaveMarkUpserts(t *testing.T) {
	st := newTestStore(t)

	exam := st.Exams()[0]
	classID := st.Classes()[0].ID
	student := st.StudentsOf(classID)[0]

	require.NoError(t, st.SaveMark(models.Mark{
		StudentID: student.ID, ClassID: classID, SubjectID: "S2",
		ExamID: exam.ID, MarksObtained: 10,
	}))
	require.NoError(t, st.SaveMark(models.Mark{
		StudentID: student.ID, ClassID: classID, SubjectID: "S2",
		ExamID: exam.ID, MarksObtained: 20,
	}))

	count := 0
	for _, m := range st.MarksForStudent(student.ID) {
		if m.SubjectID == "S2" && m.ExamID == exam.ID {
			count++
			assert.Equal(t, 20, m.MarksObtained)
		}
	}
	assert.Equal(t, 1, count)
}

func TestLookupPlaceholders(t *testing.T) {
	st := newTestStore(t)

	assert.Equal(t, UnknownClass, st.ClassName("C999"))
	assert.Equal(t, NotAvailable, st.SubjectName("S999"))
	assert.Equal(t, NotAvailable, st.TeacherName(99999))
}

func TestRecordAttendanceUpserts(t *testing.T) {
	st := newTestStore(t)

	classID := st.Classes()[0].ID
	student := st.StudentsOf(classID)[0]
	rec := models.AttendanceRecord{
		Date: "2025-06-30", ClassID: classID, Period: 1,
		StudentID: student.ID, Status: models.AttendanceStatusAbsent,
	}
	st.RecordAttendance(rec)
	rec.Status = models.AttendanceStatusLate
	st.RecordAttendance(rec)

	records := st.AttendanceForClassDate(classID, "2025-06-30", 1)
	found := 0
	for _, r := range records {
		if r.StudentID == student.ID {
			found++
			assert.Equal(t, models.AttendanceStatusLate, r.Status)
		}
	}
	assert.Equal(t, 1, found)
}

func TestAddTeacherAssignsSequentialIDs(t *testing.T) {
	st := newTestStore(t)

	before := len(st.Teachers())
	created := st.AddTeacher("Meera Pillai", "meera@school.edu", "M.Sc. Physics", "$2a$04$hash")

	assert.Equal(t, models.RoleTeacher, created.Role)
	assert.Equal(t, models.UserStatusActive, created.Status)
	assert.NotZero(t, created.ID)
	assert.Len(t, st.Teachers(), before+1)

	next := st.AddTeacher("Rohit Bose", "rohit@school.edu", "", "$2a$04$hash")
	assert.Equal(t, created.ID+1, next.ID)
}

func TestAddStudentJoinsRoster(t *testing.T) {
	st := newTestStore(t)

	classID := st.Classes()[2].ID
	before := len(st.StudentsOf(classID))

	created := st.AddStudent(classID, "Anaya Joshi", "2013-04-12")
	assert.Equal(t, classID, created.ClassID)
	assert.Len(t, created.DisplayID, 10)
	assert.Len(t, st.StudentsOf(classID), before+1)

	got, ok := st.StudentByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Anaya Joshi", got.Name)

	// New students have no synthesized history; readers tolerate it.
	assert.Empty(t, st.AttendanceForStudent(created.ID))
	assert.Empty(t, st.MarksForStudent(created.ID))
}

func TestFindStudentByLoginRequiresBothFields(t *testing.T) {
	st := newTestStore(t)

	student := st.StudentsOf(st.Classes()[0].ID)[0]

	got, ok := st.FindStudentByLogin(student.DisplayID, student.DOB)
	require.True(t, ok)
	assert.Equal(t, student.ID, got.ID)

	_, ok = st.FindStudentByLogin(student.DisplayID, "1999-01-01")
	assert.False(t, ok)
}

func TestAnnouncementCRUD(t *testing.T) {
	st := newTestStore(t)

	created := st.CreateAnnouncement("2025-07-01", "Sports Day", "Annual sports day next Friday.")
	assert.NotZero(t, created.ID)

	list := st.Announcements()
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0].ID)

	updated, err := st.UpdateAnnouncement(created.ID, "Sports Day", "Rescheduled to Monday.")
	require.NoError(t, err)
	assert.Equal(t, "Rescheduled to Monday.", updated.Content)

	require.NoError(t, st.DeleteAnnouncement(created.ID))
	err = st.DeleteAnnouncement(created.ID)
	require.Error(t, err)
}

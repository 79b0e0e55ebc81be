package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
}

func generateFixture(t *testing.T, seedValue int64) *Snapshot {
	t.Helper()
	g := NewGenerator(DefaultConfig(), rand.New(rand.NewSource(seedValue)), fixedNow())
	snap, err := g.Generate()
	require.NoError(t, err)
	return snap
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	first := generateFixture(t, 42)
	second := generateFixture(t, 42)

	// bcrypt salts differ per run, so hashes are excluded from the
	// comparison; everything else must match draw for draw.
	for i := range first.Users {
		first.Users[i].PasswordHash = ""
	}
	for i := range second.Users {
		second.Users[i].PasswordHash = ""
	}

	require.Equal(t, first.Users, second.Users)
	require.Equal(t, first.Students, second.Students)
	require.Equal(t, first.Classes, second.Classes)
	require.Equal(t, first.Schedule, second.Schedule)
	require.Equal(t, first.Attendance, second.Attendance)
	require.Equal(t, first.TeacherAttendance, second.TeacherAttendance)
	require.Equal(t, first.Marks, second.Marks)
}

func TestGenerateStudentCountsWithinBounds(t *testing.T) {
	snap := generateFixture(t, 7)
	cfg := DefaultConfig()

	require.Len(t, snap.Classes, 8)
	for _, cls := range snap.Classes {
		roster := snap.Students[cls.ID]
		assert.GreaterOrEqual(t, len(roster), cfg.StudentCountMin, "class %s", cls.ID)
		assert.LessOrEqual(t, len(roster), cfg.StudentCountMax, "class %s", cls.ID)
	}
}

func TestGenerateStudentsCarryOwnClassID(t *testing.T) {
	snap := generateFixture(t, 7)

	seen := make(map[int]bool)
	for classID, roster := range snap.Students {
		for _, student := range roster {
			assert.Equal(t, classID, student.ClassID)
			assert.False(t, seen[student.ID], "duplicate student id %d", student.ID)
			seen[student.ID] = true
			assert.Len(t, student.DisplayID, 10)
		}
	}
}

func TestGenerateNamePoolExhaustionFallsBack(t *testing.T) {
	// 8 classes at 45 students each need 360 names against a 300-name pool,
	// so the tail must use the numbered fallback.
	cfg := DefaultConfig()
	cfg.StudentCountMin = 45
	cfg.StudentCountMax = 45
	cfg.AttendanceDays = 1

	g := NewGenerator(cfg, rand.New(rand.NewSource(3)), fixedNow())
	snap, err := g.Generate()
	require.NoError(t, err)

	fallbacks := 0
	for _, roster := range snap.Students {
		for _, student := range roster {
			if strings.HasPrefix(student.Name, "Student ") {
				fallbacks++
			}
		}
	}
	assert.Equal(t, 8*45-len(studentNamePool), fallbacks)
}

func TestGenerateDOBMatchesGradeYear(t *testing.T) {
	snap := generateFixture(t, 11)

	for _, cls := range snap.Classes {
		wantYear := fmt.Sprintf("%04d", DefaultConfig().BirthYearBase-gradeNumber(cls.ID))
		for _, student := range snap.Students[cls.ID] {
			parsed, err := time.Parse(models.DateLayout, student.DOB)
			require.NoError(t, err, "dob %q", student.DOB)
			assert.Equal(t, wantYear, student.DOB[:4])
			assert.LessOrEqual(t, parsed.Day(), 28)
		}
	}
}

func TestTimetableNoTeacherDoubleBookedPerPeriod(t *testing.T) {
	snap := generateFixture(t, 99)

	type cell struct {
		teacherID int
		period    int
	}
	booked := make(map[cell]string)
	for _, slot := range snap.Schedule {
		if slot.TeacherID == nil {
			continue
		}
		key := cell{*slot.TeacherID, slot.Period}
		if other, ok := booked[key]; ok {
			t.Fatalf("teacher %d booked for period %d in both %s and %s",
				*slot.TeacherID, slot.Period, other, slot.ClassID)
		}
		booked[key] = slot.ClassID
	}
}

func TestTimetableRespectsMaxLoad(t *testing.T) {
	snap := generateFixture(t, 99)

	loads := make(map[int]int)
	for _, slot := range snap.Schedule {
		if slot.TeacherID != nil {
			loads[*slot.TeacherID]++
		}
	}
	for teacherID, load := range loads {
		assert.LessOrEqual(t, load, DefaultConfig().MaxTeacherLoad, "teacher %d", teacherID)
	}
}

func TestTimetableFollowsPeriodSubjectTemplate(t *testing.T) {
	snap := generateFixture(t, 99)

	for _, slot := range snap.Schedule {
		assert.Equal(t, periodSubjects[(slot.Period-1)%len(periodSubjects)], slot.SubjectID)
	}
}

func TestAssignTeachersExhaustionLeavesSlotsUnassigned(t *testing.T) {
	// Six classes of six periods need 36 assignments; five teachers capped
	// at six slots each can cover at most 30. The shortfall must surface as
	// unassigned slots, never as a double booking or an over-cap load.
	classes := make([]models.Class, 6)
	for i := range classes {
		classes[i] = models.Class{ID: fmt.Sprintf("C%d", i+1), Name: fmt.Sprintf("Grade %d", i+1)}
	}
	teachers := make([]models.User, 5)
	for i := range teachers {
		teachers[i] = models.User{ID: 2 + i, Role: models.RoleTeacher, Status: models.UserStatusActive}
	}

	slots := buildScheduleTemplate(classes, 6)
	AssignTeachers(slots, classes, teachers, 6, 6)

	summary := Coverage(slots)
	assert.Equal(t, 36, summary.TotalSlots)
	assert.Equal(t, 30, summary.AssignedSlots)
	assert.Equal(t, 6, summary.UnassignedSlots)

	loads := make(map[int]int)
	perPeriod := make(map[int]map[int]bool)
	for _, slot := range slots {
		if slot.TeacherID == nil {
			continue
		}
		loads[*slot.TeacherID]++
		if perPeriod[slot.Period] == nil {
			perPeriod[slot.Period] = make(map[int]bool)
		}
		require.False(t, perPeriod[slot.Period][*slot.TeacherID],
			"teacher %d double booked in period %d", *slot.TeacherID, slot.Period)
		perPeriod[slot.Period][*slot.TeacherID] = true
	}
	for teacherID, load := range loads {
		assert.LessOrEqual(t, load, 6, "teacher %d", teacherID)
	}
}

func TestAssignTeachersNoTeachersIsANoop(t *testing.T) {
	classes := []models.Class{{ID: "C1"}}
	slots := buildScheduleTemplate(classes, 6)
	AssignTeachers(slots, classes, nil, 6, 6)

	for _, slot := range slots {
		assert.Nil(t, slot.TeacherID)
	}
}

func TestAssignHomeroomsConsumesTeachersInOrder(t *testing.T) {
	classes := make([]models.Class, 8)
	for i := range classes {
		classes[i] = models.Class{ID: fmt.Sprintf("C%d", i+1)}
	}
	teachers := make([]models.User, 9)
	for i := range teachers {
		teachers[i] = models.User{ID: 2 + i, Role: models.RoleTeacher, Status: models.UserStatusActive}
	}

	AssignHomerooms(classes, teachers)

	for i, cls := range classes {
		require.NotNil(t, cls.HomeroomTeacherID, "class %s", cls.ID)
		assert.Equal(t, teachers[i].ID, *cls.HomeroomTeacherID)
	}
}

func TestAssignHomeroomsShortPoolLeavesTailNil(t *testing.T) {
	classes := make([]models.Class, 6)
	for i := range classes {
		classes[i] = models.Class{ID: fmt.Sprintf("C%d", i+1)}
	}
	teachers := make([]models.User, 5)
	for i := range teachers {
		teachers[i] = models.User{ID: 2 + i}
	}

	AssignHomerooms(classes, teachers)

	for i := 0; i < 5; i++ {
		require.NotNil(t, classes[i].HomeroomTeacherID)
	}
	assert.Nil(t, classes[5].HomeroomTeacherID)
}

func TestAttendanceSkipsWeekends(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AttendanceDays = 30

	g := NewGenerator(cfg, rand.New(rand.NewSource(5)), fixedNow())
	snap, err := g.Generate()
	require.NoError(t, err)

	require.NotEmpty(t, snap.Attendance)
	for _, rec := range snap.Attendance {
		day, err := time.Parse(models.DateLayout, rec.Date)
		require.NoError(t, err)
		wd := day.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "record on %s", rec.Date)
		assert.NotEqual(t, time.Sunday, wd, "record on %s", rec.Date)
	}
	for _, rec := range snap.TeacherAttendance {
		day, err := time.Parse(models.DateLayout, rec.Date)
		require.NoError(t, err)
		wd := day.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestAttendanceOneRecordPerStudentPeriodDay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AttendanceDays = 10

	g := NewGenerator(cfg, rand.New(rand.NewSource(5)), fixedNow())
	snap, err := g.Generate()
	require.NoError(t, err)

	type key struct {
		date      string
		studentID int
		period    int
	}
	seen := make(map[key]bool)
	for _, rec := range snap.Attendance {
		k := key{rec.Date, rec.StudentID, rec.Period}
		require.False(t, seen[k], "duplicate record %+v", k)
		seen[k] = true
		assert.True(t, rec.Status.Valid(), "status %q", rec.Status)
	}
}

func TestMarksStayWithinExamBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AttendanceDays = 1

	g := NewGenerator(cfg, rand.New(rand.NewSource(13)), fixedNow())
	snap, err := g.Generate()
	require.NoError(t, err)

	maxByExam := make(map[int]int)
	for _, exam := range snap.Exams {
		maxByExam[exam.ID] = exam.MaxMarks
	}

	require.NotEmpty(t, snap.Marks)
	for _, mark := range snap.Marks {
		max := maxByExam[mark.ExamID]
		require.Positive(t, max)
		assert.GreaterOrEqual(t, mark.MarksObtained, int(0.4*float64(max)))
		assert.Less(t, mark.MarksObtained, max)
	}
}

func TestGenerateRegistersStudentLoginAccount(t *testing.T) {
	snap := generateFixture(t, 21)

	first := snap.Students[snap.Classes[0].ID][0]
	var account *models.User
	for i := range snap.Users {
		if snap.Users[i].Role == models.RoleStudent {
			account = &snap.Users[i]
			break
		}
	}
	require.NotNil(t, account)
	assert.Equal(t, first.ID, account.ID)
	assert.Equal(t, first.DisplayID, account.Email)
	require.NotNil(t, account.StudentRef)
	assert.Equal(t, first.ID, *account.StudentRef)
}

func TestStaffPasswordsAreHashed(t *testing.T) {
	snap := generateFixture(t, 21)

	for _, u := range snap.Users {
		if u.Role == models.RoleStudent {
			assert.Empty(t, u.PasswordHash)
			continue
		}
		assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"), "user %d has no bcrypt hash", u.ID)
	}
}

package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-portal-api/internal/models"
)

const (
	studentIDBase = 1001
	staffPassword = "password"
)

// Config tunes the dataset synthesizer.
type Config struct {
	StudentCountMin int
	StudentCountMax int
	AttendanceDays  int
	MaxTeacherLoad  int
	PeriodsPerDay   int
	BirthYearBase   int
}

// DefaultConfig mirrors the shipped portal defaults.
func DefaultConfig() Config {
	return Config{
		StudentCountMin: 40,
		StudentCountMax: 50,
		AttendanceDays:  365,
		MaxTeacherLoad:  6,
		PeriodsPerDay:   6,
		BirthYearBase:   2015,
	}
}

// Snapshot is the fully generated in-memory dataset consumed by the store.
type Snapshot struct {
	Users             []models.User
	Students          map[string][]models.Student
	Classes           []models.Class
	Subjects          []models.Subject
	Schedule          []models.ScheduleSlot
	Attendance        []models.AttendanceRecord
	TeacherAttendance []models.TeacherAttendanceRecord
	Leaves            []models.LeaveRequest
	Announcements     []models.Announcement
	Exams             []models.Exam
	Marks             []models.Mark
}

// Teachers returns the active teacher accounts from the snapshot.
func (s *Snapshot) Teachers() []models.User {
	var teachers []models.User
	for _, u := range s.Users {
		if u.Role == models.RoleTeacher && u.Status == models.UserStatusActive {
			teachers = append(teachers, u)
		}
	}
	return teachers
}

// Generator synthesizes a Snapshot from the fixed catalogs. All random draws
// go through the injected source, so a fixed seed yields a fixed dataset.
type Generator struct {
	cfg Config
	rng *rand.Rand
	now time.Time
}

// NewGenerator builds a generator. A nil rng falls back to a time-seeded
// source; a zero now falls back to the current day.
func NewGenerator(cfg Config, rng *rand.Rand, now time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now.IsZero() {
		now = time.Now()
	}
	if cfg.PeriodsPerDay <= 0 {
		cfg.PeriodsPerDay = 6
	}
	if cfg.MaxTeacherLoad <= 0 {
		cfg.MaxTeacherLoad = 6
	}
	return &Generator{cfg: cfg, rng: rng, now: now}
}

// Generate runs the full pipeline: roster, timetable, homerooms, attendance
// and marks. It runs to completion before the server starts serving; there
// is no partial-state visibility.
func (g *Generator) Generate() (*Snapshot, error) {
	snap := &Snapshot{
		Users:         staffCatalog(),
		Students:      make(map[string][]models.Student),
		Classes:       classCatalog(),
		Subjects:      subjectCatalog(),
		Exams:         examCatalog(g.now),
		Leaves:        seedLeaves(g.now),
		Announcements: seedAnnouncements(g.now),
	}

	if err := hashStaffPasswords(snap.Users); err != nil {
		return nil, fmt.Errorf("hash staff passwords: %w", err)
	}

	g.generateStudents(snap)
	g.registerStudentAccount(snap)

	snap.Schedule = buildScheduleTemplate(snap.Classes, g.cfg.PeriodsPerDay)
	AssignTeachers(snap.Schedule, snap.Classes, snap.Teachers(), g.cfg.MaxTeacherLoad, g.cfg.PeriodsPerDay)
	AssignHomerooms(snap.Classes, snap.Teachers())

	g.synthesizeAttendance(snap)
	g.synthesizeMarks(snap)

	return snap, nil
}

// generateStudents fills each class roster with a random count of students,
// drawing names from the pool without replacement. Display IDs are 10-digit
// numeric strings and are not deduplicated (known limitation).
func (g *Generator) generateStudents(snap *Snapshot) {
	pool := append([]string(nil), studentNamePool...)
	counter := studentIDBase

	spread := g.cfg.StudentCountMax - g.cfg.StudentCountMin
	if spread < 0 {
		spread = 0
	}

	for _, cls := range snap.Classes {
		count := g.cfg.StudentCountMin + g.rng.Intn(spread+1)
		roster := make([]models.Student, 0, count)
		for i := 0; i < count; i++ {
			name := fmt.Sprintf("Student %d", counter)
			if len(pool) > 0 {
				idx := g.rng.Intn(len(pool))
				name = pool[idx]
				pool = append(pool[:idx], pool[idx+1:]...)
			}

			// Day is clamped to 1..28 so February never overflows. The
			// truncation of 29-31 day months is an accepted simplification.
			year := g.cfg.BirthYearBase - gradeNumber(cls.ID)
			dob := fmt.Sprintf("%04d-%02d-%02d", year, g.rng.Intn(12)+1, g.rng.Intn(28)+1)

			roster = append(roster, models.Student{
				ID:            counter,
				DisplayID:     strconv.FormatInt(1000000000+g.rng.Int63n(9000000000), 10),
				Name:          name,
				DOB:           dob,
				ClassID:       cls.ID,
				ProfilePicURL: fmt.Sprintf("https://placehold.co/128x128/0d9488/ffffff?text=%s", initial(name)),
			})
			counter++
		}
		snap.Students[cls.ID] = roster
	}
}

// registerStudentAccount designates the first student of the first class as
// a login-capable account.
func (g *Generator) registerStudentAccount(snap *Snapshot) {
	if len(snap.Classes) == 0 {
		return
	}
	roster := snap.Students[snap.Classes[0].ID]
	if len(roster) == 0 {
		return
	}
	first := roster[0]
	ref := first.ID
	snap.Users = append(snap.Users, models.User{
		ID:            first.ID,
		Name:          first.Name,
		Email:         first.DisplayID,
		Role:          models.RoleStudent,
		Status:        models.UserStatusActive,
		ProfilePicURL: first.ProfilePicURL,
		StudentRef:    &ref,
	})
}

func hashStaffPasswords(users []models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Role == models.RoleStudent {
			continue
		}
		users[i].PasswordHash = string(hash)
	}
	return nil
}

func gradeNumber(classID string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(classID, "C"))
	if err != nil {
		return 0
	}
	return n
}

func initial(name string) string {
	if name == "" {
		return "?"
	}
	return string([]rune(name)[0])
}

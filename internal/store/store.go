package store

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/seed"
)

// Placeholder display values returned when a reference lookup misses. The
// portal degrades display rather than failing.
const (
	UnknownClass = "Unknown Class"
	NotAvailable = "N/A"
)

// Store owns the generated snapshot for the lifetime of the process. All
// mutation goes through its methods; call sites never reach into the
// snapshot directly. Lifecycle is init -> serve-session -> discard: there
// is no persistence and the dataset is rebuilt from the seed on restart.
type Store struct {
	mu   sync.RWMutex
	snap *seed.Snapshot
	rng  *rand.Rand

	nextLeaveID        int
	nextAnnouncementID int
	nextUserID         int
	nextStudentID      int
}

// New wraps a generated snapshot. The rng serves post-generation inserts
// (student display IDs); a nil rng falls back to a time-seeded source.
func New(snap *seed.Snapshot, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Store{snap: snap, rng: rng}
	for _, l := range snap.Leaves {
		if l.ID >= s.nextLeaveID {
			s.nextLeaveID = l.ID + 1
		}
	}
	for _, a := range snap.Announcements {
		if a.ID >= s.nextAnnouncementID {
			s.nextAnnouncementID = a.ID + 1
		}
	}
	for _, u := range snap.Users {
		if u.ID >= s.nextUserID {
			s.nextUserID = u.ID + 1
		}
	}
	for _, roster := range snap.Students {
		for _, st := range roster {
			if st.ID >= s.nextStudentID {
				s.nextStudentID = st.ID + 1
			}
			if st.ID >= s.nextUserID {
				s.nextUserID = st.ID + 1
			}
		}
	}
	return s
}

// Users returns a copy of all user accounts.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.snap.Users...)
}

// Teachers returns the active teacher accounts.
func (s *Store) Teachers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Teachers()
}

// FindUserByEmail locates an active staff account by login email and role.
func (s *Store) FindUserByEmail(email string, role models.UserRole) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.snap.Users {
		if u.Email == email && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByID locates any user account.
func (s *Store) FindUserByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.snap.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindStudentByLogin matches a student by display ID and date of birth.
func (s *Store) FindStudentByLogin(displayID, dob string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, roster := range s.snap.Students {
		for _, st := range roster {
			if st.DisplayID == displayID && st.DOB == dob {
				return st, true
			}
		}
	}
	return models.Student{}, false
}

// StudentByID locates a student across all classes.
func (s *Store) StudentByID(id int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, roster := range s.snap.Students {
		for _, st := range roster {
			if st.ID == id {
				return st, true
			}
		}
	}
	return models.Student{}, false
}

// Classes returns a copy of all classes.
func (s *Store) Classes() []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Class(nil), s.snap.Classes...)
}

// ClassByID locates a class.
func (s *Store) ClassByID(id string) (models.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.snap.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return models.Class{}, false
}

// StudentsOf returns the roster for a class.
func (s *Store) StudentsOf(classID string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Student(nil), s.snap.Students[classID]...)
}

// Subjects returns the subject catalog.
func (s *Store) Subjects() []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Subject(nil), s.snap.Subjects...)
}

// Exams returns the exam catalog.
func (s *Store) Exams() []models.Exam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Exam(nil), s.snap.Exams...)
}

// ExamByID locates an exam.
func (s *Store) ExamByID(id int) (models.Exam, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.snap.Exams {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

// ClassName resolves a class name, degrading to a placeholder on miss.
func (s *Store) ClassName(id string) string {
	if c, ok := s.ClassByID(id); ok {
		return c.Name
	}
	return UnknownClass
}

// SubjectName resolves a subject name, degrading to a placeholder on miss.
func (s *Store) SubjectName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.snap.Subjects {
		if sub.ID == id {
			return sub.Name
		}
	}
	return NotAvailable
}

// TeacherName resolves a teacher name, degrading to a placeholder on miss.
func (s *Store) TeacherName(id int) string {
	if u, ok := s.FindUserByID(id); ok {
		return u.Name
	}
	return NotAvailable
}

// AddTeacher registers a new teacher account post-generation.
func (s *Store) AddTeacher(name, email, qualifications string, passwordHash string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:             s.nextUserID,
		TeacherID:      "TCH" + strconv.Itoa(1000+s.nextUserID),
		Name:           name,
		Email:          email,
		PasswordHash:   passwordHash,
		Role:           models.RoleTeacher,
		Status:         models.UserStatusActive,
		Qualifications: qualifications,
	}
	s.nextUserID++
	s.snap.Users = append(s.snap.Users, u)
	return u
}

// AddStudent enrolls a new student into a class post-generation. The new
// student has no synthesized attendance or marks; readers tolerate the gap.
func (s *Store) AddStudent(classID, name, dob string) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := models.Student{
		ID:        s.nextStudentID,
		DisplayID: strconv.FormatInt(1000000000+s.rng.Int63n(9000000000), 10),
		Name:      name,
		DOB:       dob,
		ClassID:   classID,
	}
	s.nextStudentID++
	if st.ID >= s.nextUserID {
		s.nextUserID = st.ID + 1
	}
	s.snap.Students[classID] = append(s.snap.Students[classID], st)
	return st
}

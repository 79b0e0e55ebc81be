package store

import (
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/seed"
)

// Schedule returns a copy of the full timetable.
func (s *Store) Schedule() []models.ScheduleSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ScheduleSlot(nil), s.snap.Schedule...)
}

// ScheduleForClass returns the slots for one class in period order.
func (s *Store) ScheduleForClass(classID string) []models.ScheduleSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var slots []models.ScheduleSlot
	for _, slot := range s.snap.Schedule {
		if slot.ClassID == classID {
			slots = append(slots, slot)
		}
	}
	return slots
}

// ScheduleForTeacher returns the slots assigned to one teacher.
func (s *Store) ScheduleForTeacher(teacherID int) []models.ScheduleSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var slots []models.ScheduleSlot
	for _, slot := range s.snap.Schedule {
		if slot.TeacherID != nil && *slot.TeacherID == teacherID {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Coverage reports assignment coverage over the timetable.
func (s *Store) Coverage() models.CoverageSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seed.Coverage(s.snap.Schedule)
}

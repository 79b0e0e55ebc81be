package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type scheduleStore interface {
	Schedule() []models.ScheduleSlot
	ScheduleForClass(classID string) []models.ScheduleSlot
	ScheduleForTeacher(teacherID int) []models.ScheduleSlot
	Coverage() models.CoverageSummary
	ClassByID(id string) (models.Class, bool)
	ClassName(id string) string
	SubjectName(id string) string
	TeacherName(id int) string
}

type coverageGauge interface {
	SetUnassignedSlots(count int)
}

// ScheduleService serves timetable views and the coverage summary.
type ScheduleService struct {
	store   scheduleStore
	metrics coverageGauge
	logger  *zap.Logger
}

// NewScheduleService builds a ScheduleService. It publishes the initial
// coverage gauge immediately since the timetable never changes after
// generation.
func NewScheduleService(store scheduleStore, metrics coverageGauge, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ScheduleService{store: store, metrics: metrics, logger: logger}
	s.publishCoverage()
	return s
}

// ForClass returns the timetable of one class in period order.
func (s *ScheduleService) ForClass(classID string) ([]models.ScheduleEntry, error) {
	if _, ok := s.store.ClassByID(classID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return s.enrich(s.store.ScheduleForClass(classID)), nil
}

// ForTeacher returns the slots assigned to one teacher across all classes.
func (s *ScheduleService) ForTeacher(teacherID int) []models.ScheduleEntry {
	return s.enrich(s.store.ScheduleForTeacher(teacherID))
}

// Coverage reports total/assigned/unassigned slot counts. Unassigned slots
// are expected under short teacher supply and surface here instead of as
// errors anywhere.
func (s *ScheduleService) Coverage() models.CoverageSummary {
	summary := s.store.Coverage()
	if s.metrics != nil {
		s.metrics.SetUnassignedSlots(summary.UnassignedSlots)
	}
	return summary
}

func (s *ScheduleService) publishCoverage() {
	summary := s.Coverage()
	if summary.UnassignedSlots > 0 {
		s.logger.Warn("timetable has unassigned slots",
			zap.Int("unassigned", summary.UnassignedSlots),
			zap.Int("total", summary.TotalSlots))
	}
}

func (s *ScheduleService) enrich(slots []models.ScheduleSlot) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(slots))
	for _, slot := range slots {
		entry := models.ScheduleEntry{
			ScheduleSlot: slot,
			ClassName:    s.store.ClassName(slot.ClassID),
			SubjectName:  s.store.SubjectName(slot.SubjectID),
			TeacherName:  "N/A",
		}
		if slot.TeacherID != nil {
			entry.TeacherName = s.store.TeacherName(*slot.TeacherID)
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ClassID != entries[j].ClassID {
			return entries[i].ClassID < entries[j].ClassID
		}
		return entries[i].Period < entries[j].Period
	})
	return entries
}

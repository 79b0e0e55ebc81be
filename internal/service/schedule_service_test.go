package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/models"
)

type scheduleStoreStub struct {
	slots []models.ScheduleSlot
}

func (s *scheduleStoreStub) Schedule() []models.ScheduleSlot { return s.slots }

func (s *scheduleStoreStub) ScheduleForClass(classID string) []models.ScheduleSlot {
	var out []models.ScheduleSlot
	for _, slot := range s.slots {
		if slot.ClassID == classID {
			out = append(out, slot)
		}
	}
	return out
}

func (s *scheduleStoreStub) ScheduleForTeacher(teacherID int) []models.ScheduleSlot {
	var out []models.ScheduleSlot
	for _, slot := range s.slots {
		if slot.TeacherID != nil && *slot.TeacherID == teacherID {
			out = append(out, slot)
		}
	}
	return out
}

func (s *scheduleStoreStub) Coverage() models.CoverageSummary {
	summary := models.CoverageSummary{TotalSlots: len(s.slots)}
	for _, slot := range s.slots {
		if slot.TeacherID != nil {
			summary.AssignedSlots++
		}
	}
	summary.UnassignedSlots = summary.TotalSlots - summary.AssignedSlots
	return summary
}

func (s *scheduleStoreStub) ClassByID(id string) (models.Class, bool) {
	if id == "C1" || id == "C2" {
		return models.Class{ID: id}, true
	}
	return models.Class{}, false
}

func (s *scheduleStoreStub) ClassName(id string) string {
	if id == "C1" {
		return "Grade 1"
	}
	return "Grade 2"
}

func (s *scheduleStoreStub) SubjectName(id string) string { return "Mathematics" }

func (s *scheduleStoreStub) TeacherName(id int) string { return "Samaira Khan" }

type gaugeStub struct {
	value int
	sets  int
}

func (g *gaugeStub) SetUnassignedSlots(count int) {
	g.value = count
	g.sets++
}

func newScheduleFixture() *scheduleStoreStub {
	teacher := 2
	return &scheduleStoreStub{slots: []models.ScheduleSlot{
		{ClassID: "C2", Period: 1, SubjectID: "S3", TeacherID: &teacher},
		{ClassID: "C1", Period: 2, SubjectID: "S3", TeacherID: nil},
		{ClassID: "C1", Period: 1, SubjectID: "S3", TeacherID: &teacher},
	}}
}

func TestScheduleForClassSortsAndEnriches(t *testing.T) {
	svc := NewScheduleService(newScheduleFixture(), nil, nil)

	entries, err := svc.ForClass("C1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Period)
	assert.Equal(t, 2, entries[1].Period)
	assert.Equal(t, "Grade 1", entries[0].ClassName)
	assert.Equal(t, "Mathematics", entries[0].SubjectName)
	assert.Equal(t, "Samaira Khan", entries[0].TeacherName)
	// Uncovered slots render as N/A rather than erroring.
	assert.Equal(t, "N/A", entries[1].TeacherName)
}

func TestScheduleForClassUnknown(t *testing.T) {
	svc := NewScheduleService(newScheduleFixture(), nil, nil)

	_, err := svc.ForClass("C999")
	require.Error(t, err)
}

func TestScheduleForTeacherSpansClasses(t *testing.T) {
	svc := NewScheduleService(newScheduleFixture(), nil, nil)

	entries := svc.ForTeacher(2)
	require.Len(t, entries, 2)
	assert.Equal(t, "C1", entries[0].ClassID)
	assert.Equal(t, "C2", entries[1].ClassID)
}

func TestSchedulePublishesCoverageGauge(t *testing.T) {
	gauge := &gaugeStub{}
	svc := NewScheduleService(newScheduleFixture(), gauge, nil)

	// Constructor publishes once up front.
	assert.Equal(t, 1, gauge.sets)
	assert.Equal(t, 1, gauge.value)

	summary := svc.Coverage()
	assert.Equal(t, 3, summary.TotalSlots)
	assert.Equal(t, 2, summary.AssignedSlots)
	assert.Equal(t, 1, summary.UnassignedSlots)
	assert.Equal(t, 2, gauge.sets)
}

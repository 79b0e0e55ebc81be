package seed

import "github.com/noah-isme/school-portal-api/internal/models"

// periodSubjects is the fixed subject-per-period template applied to every
// class: Mathematics, English, Science, Hindi, Social Studies, PE.
var periodSubjects = []string{"S3", "S1", "S4", "S2", "S5", "S8"}

// buildScheduleTemplate creates one unassigned slot per (class, period).
func buildScheduleTemplate(classes []models.Class, periods int) []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, 0, len(classes)*periods)
	for _, cls := range classes {
		for p := 0; p < periods; p++ {
			slots = append(slots, models.ScheduleSlot{
				ClassID:   cls.ID,
				Period:    p + 1,
				SubjectID: periodSubjects[p%len(periodSubjects)],
			})
		}
	}
	return slots
}

// AssignTeachers greedily fills slot teachers. Periods are walked in the
// outer loop and classes in the inner loop, so earlier classes get first
// pick of low-load teachers within each period; that ordering is the
// tie-break policy, not an accident. The candidate cursor rotates across
// the whole run rather than resetting per slot.
//
// A teacher is eligible for a slot when it is not already teaching that
// period and its total assigned load is below maxLoad. When a full scan of
// the pool finds nobody eligible the slot stays unassigned; that is an
// accepted terminal outcome, never an error, and no assignment is ever
// revisited to fix a later conflict.
func AssignTeachers(slots []models.ScheduleSlot, classes []models.Class, teachers []models.User, maxLoad, periods int) {
	if len(teachers) == 0 {
		return
	}

	cursor := 0
	for period := 1; period <= periods; period++ {
		for _, cls := range classes {
			slot := findSlot(slots, cls.ID, period)
			if slot == nil {
				continue
			}

			for i := 0; i < len(teachers); i++ {
				teacher := teachers[cursor%len(teachers)]
				cursor++

				if teachingInPeriod(slots, teacher.ID, period) {
					continue
				}
				if totalLoad(slots, teacher.ID) >= maxLoad {
					continue
				}

				id := teacher.ID
				slot.TeacherID = &id
				break
			}
		}
	}
}

func findSlot(slots []models.ScheduleSlot, classID string, period int) *models.ScheduleSlot {
	for i := range slots {
		if slots[i].ClassID == classID && slots[i].Period == period {
			return &slots[i]
		}
	}
	return nil
}

func teachingInPeriod(slots []models.ScheduleSlot, teacherID, period int) bool {
	for i := range slots {
		if slots[i].Period == period && slots[i].TeacherID != nil && *slots[i].TeacherID == teacherID {
			return true
		}
	}
	return false
}

func totalLoad(slots []models.ScheduleSlot, teacherID int) int {
	load := 0
	for i := range slots {
		if slots[i].TeacherID != nil && *slots[i].TeacherID == teacherID {
			load++
		}
	}
	return load
}

// Coverage summarises how many slots ended up with a teacher.
func Coverage(slots []models.ScheduleSlot) models.CoverageSummary {
	summary := models.CoverageSummary{TotalSlots: len(slots)}
	for i := range slots {
		if slots[i].TeacherID != nil {
			summary.AssignedSlots++
		}
	}
	summary.UnassignedSlots = summary.TotalSlots - summary.AssignedSlots
	return summary
}

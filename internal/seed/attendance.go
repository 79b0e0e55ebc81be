package seed

import (
	"time"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// Weighted status thresholds for a single uniform draw in [0,1).
const (
	studentAbsentThreshold = 0.95
	studentLateThreshold   = 0.90
	teacherLeaveThreshold  = 0.98
)

// synthesizeAttendance backfills attendance for the last AttendanceDays
// calendar days ending today, skipping Saturdays and Sundays. Each student
// gets one record per period per school day; each teacher gets exactly one
// record per school day.
func (g *Generator) synthesizeAttendance(snap *Snapshot) {
	teachers := snap.Teachers()

	for i := 0; i < g.cfg.AttendanceDays; i++ {
		date := g.now.AddDate(0, 0, -i)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dateStr := date.Format(models.DateLayout)

		for _, cls := range snap.Classes {
			for _, student := range snap.Students[cls.ID] {
				for period := 1; period <= g.cfg.PeriodsPerDay; period++ {
					snap.Attendance = append(snap.Attendance, models.AttendanceRecord{
						Date:      dateStr,
						ClassID:   cls.ID,
						Period:    period,
						StudentID: student.ID,
						Status:    g.drawStudentStatus(),
					})
				}
			}
		}

		for _, teacher := range teachers {
			snap.TeacherAttendance = append(snap.TeacherAttendance, models.TeacherAttendanceRecord{
				TeacherID: teacher.ID,
				Date:      dateStr,
				Status:    g.drawTeacherStatus(),
			})
		}
	}
}

func (g *Generator) drawStudentStatus() models.AttendanceStatus {
	r := g.rng.Float64()
	switch {
	case r > studentAbsentThreshold:
		return models.AttendanceStatusAbsent
	case r > studentLateThreshold:
		return models.AttendanceStatusLate
	default:
		return models.AttendanceStatusPresent
	}
}

func (g *Generator) drawTeacherStatus() models.TeacherAttendanceStatus {
	if g.rng.Float64() > teacherLeaveThreshold {
		return models.TeacherAttendanceOnLeave
	}
	return models.TeacherAttendancePresent
}

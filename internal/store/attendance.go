package store

import "github.com/noah-isme/school-portal-api/internal/models"

// AttendanceForClassDate returns the records for one class, date and period.
// A period of zero returns all periods for the day.
func (s *Store) AttendanceForClassDate(classID, date string, period int) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.AttendanceRecord
	for _, r := range s.snap.Attendance {
		if r.ClassID == classID && r.Date == date && (period == 0 || r.Period == period) {
			records = append(records, r)
		}
	}
	return records
}

// AttendanceForStudent returns every record for one student.
func (s *Store) AttendanceForStudent(studentID int) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.AttendanceRecord
	for _, r := range s.snap.Attendance {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	return records
}

// AttendanceForClassMonth returns the student records for a class whose date
// falls inside the given month. Dates are compared on their "YYYY-MM" prefix.
func (s *Store) AttendanceForClassMonth(classID, monthPrefix string) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.AttendanceRecord
	for _, r := range s.snap.Attendance {
		if r.ClassID == classID && len(r.Date) >= 7 && r.Date[:7] == monthPrefix {
			records = append(records, r)
		}
	}
	return records
}

// RecordAttendance upserts one student's status for a (date, class, period)
// cell: an existing record is overwritten, otherwise a new one is appended.
func (s *Store) RecordAttendance(rec models.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Attendance {
		r := &s.snap.Attendance[i]
		if r.Date == rec.Date && r.ClassID == rec.ClassID && r.Period == rec.Period && r.StudentID == rec.StudentID {
			r.Status = rec.Status
			return
		}
	}
	s.snap.Attendance = append(s.snap.Attendance, rec)
}

// TeacherAttendance returns all teacher attendance records, optionally
// filtered by month prefix ("YYYY-MM", empty for all).
func (s *Store) TeacherAttendance(monthPrefix string) []models.TeacherAttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.TeacherAttendanceRecord
	for _, r := range s.snap.TeacherAttendance {
		if monthPrefix == "" || (len(r.Date) >= 7 && r.Date[:7] == monthPrefix) {
			records = append(records, r)
		}
	}
	return records
}

// TeacherAttendanceFor returns one teacher's attendance history.
func (s *Store) TeacherAttendanceFor(teacherID int) []models.TeacherAttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.TeacherAttendanceRecord
	for _, r := range s.snap.TeacherAttendance {
		if r.TeacherID == teacherID {
			records = append(records, r)
		}
	}
	return records
}

// RecordTeacherAttendance upserts a teacher's status for a date.
func (s *Store) RecordTeacherAttendance(rec models.TeacherAttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.TeacherAttendance {
		r := &s.snap.TeacherAttendance[i]
		if r.TeacherID == rec.TeacherID && r.Date == rec.Date {
			r.Status = rec.Status
			return
		}
	}
	s.snap.TeacherAttendance = append(s.snap.TeacherAttendance, rec)
}

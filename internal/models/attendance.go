package models

// AttendanceStatus represents the status for student attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLate    AttendanceStatus = "Late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	default:
		return false
	}
}

// Code returns the single-character grid code for exports.
func (s AttendanceStatus) Code() string {
	switch s {
	case AttendanceStatusAbsent:
		return "A"
	case AttendanceStatusLate:
		return "L"
	default:
		return "P"
	}
}

// AttendanceRecord is one student's status for a (date, class, period) cell.
// The composite key (Date, ClassID, Period, StudentID) is unique.
type AttendanceRecord struct {
	Date      string           `json:"date"`
	ClassID   string           `json:"classId"`
	Period    int              `json:"period"`
	StudentID int              `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
}

// TeacherAttendanceStatus represents daily teacher attendance.
type TeacherAttendanceStatus string

const (
	TeacherAttendancePresent TeacherAttendanceStatus = "Present"
	TeacherAttendanceOnLeave TeacherAttendanceStatus = "On Leave"
)

// TeacherAttendanceRecord holds one teacher's status for a date.
type TeacherAttendanceRecord struct {
	TeacherID int                     `json:"teacherId"`
	Date      string                  `json:"date"`
	Status    TeacherAttendanceStatus `json:"status"`
}

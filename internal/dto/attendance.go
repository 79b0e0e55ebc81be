package dto

// AttendanceEntry is one student's status inside a bulk marking request.
type AttendanceEntry struct {
	StudentID int    `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Late"`
}

// MarkAttendanceRequest records a class period's attendance for a date.
type MarkAttendanceRequest struct {
	ClassID string            `json:"classId" validate:"required"`
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Period  int               `json:"period" validate:"required,min=1,max=6"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// MarkTeacherAttendanceRequest records a teacher's daily status.
type MarkTeacherAttendanceRequest struct {
	TeacherID int    `json:"teacherId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=Present 'On Leave'"`
}

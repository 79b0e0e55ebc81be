package models

// LeaveStatus tracks the leave request lifecycle. Approved and Rejected are
// terminal: no transition leaves either state.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequest is a teacher's request for a date range of leave. Created by
// teacher action; status mutated only by admin approve/reject.
type LeaveRequest struct {
	ID          int         `json:"id"`
	TeacherID   int         `json:"teacherId"`
	TeacherName string      `json:"teacherName"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
}

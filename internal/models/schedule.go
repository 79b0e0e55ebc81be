package models

// ScheduleSlot is one (class, period) timetable cell. The subject comes from
// a fixed per-class template; TeacherID is nil until the assignment engine
// runs and may legitimately stay nil when teacher supply runs out.
type ScheduleSlot struct {
	ClassID   string `json:"classId"`
	Period    int    `json:"period"`
	SubjectID string `json:"subjectId"`
	TeacherID *int   `json:"teacherId,omitempty"`
}

// ScheduleEntry is a slot enriched with display names for API responses.
type ScheduleEntry struct {
	ScheduleSlot
	ClassName   string `json:"className"`
	SubjectName string `json:"subjectName"`
	TeacherName string `json:"teacherName"`
}

// CoverageSummary reports how well the greedy assignment covered the
// timetable. Unassigned slots are a reported metric, not an error.
type CoverageSummary struct {
	TotalSlots      int `json:"totalSlots"`
	AssignedSlots   int `json:"assignedSlots"`
	UnassignedSlots int `json:"unassignedSlots"`
}

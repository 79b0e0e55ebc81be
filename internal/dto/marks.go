package dto

// MarkEntry is one student's marks for one subject inside a bulk save.
type MarkEntry struct {
	StudentID     int    `json:"studentId" validate:"required"`
	SubjectID     string `json:"subjectId" validate:"required"`
	MarksObtained int    `json:"marksObtained" validate:"min=0"`
}

// SaveMarksRequest stores marks for a class and exam.
type SaveMarksRequest struct {
	ClassID string      `json:"classId" validate:"required"`
	ExamID  int         `json:"examId" validate:"required"`
	Entries []MarkEntry `json:"entries" validate:"required,min=1,dive"`
}

// ReportCardRow is one subject line of a student report card.
type ReportCardRow struct {
	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Obtained    int    `json:"obtained"`
	MaxMarks    int    `json:"maxMarks"`
}

// ReportCard aggregates a student's marks for one exam.
type ReportCard struct {
	StudentID   int             `json:"studentId"`
	StudentName string          `json:"studentName"`
	ClassName   string          `json:"className"`
	ExamID      int             `json:"examId"`
	ExamName    string          `json:"examName"`
	Rows        []ReportCardRow `json:"rows"`
	Total       int             `json:"total"`
	MaxTotal    int             `json:"maxTotal"`
	Percentage  float64         `json:"percentage"`
}

package models

// Exam is a static catalog entry describing an examination.
type Exam struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	MaxMarks int    `json:"maxMarks"`
}

// Mark records the marks a student obtained in one subject of one exam.
// MarksObtained never exceeds the owning exam's MaxMarks.
type Mark struct {
	StudentID     int    `json:"studentId"`
	ClassID       string `json:"classId"`
	SubjectID     string `json:"subjectId"`
	ExamID        int    `json:"examId"`
	MarksObtained int    `json:"marksObtained"`
}

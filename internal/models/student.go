package models

// DateLayout is the wire format for all calendar dates in the portal.
const DateLayout = "2006-01-02"

// Student represents an enrolled student. DisplayID is the 10-digit numeric
// string used as the student's login; the date of birth doubles as the login
// secret. Every student belongs to exactly one class after generation.
type Student struct {
	ID            int    `json:"id"`
	DisplayID     string `json:"studentId"`
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	ClassID       string `json:"classId"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

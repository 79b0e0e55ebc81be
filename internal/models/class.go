package models

// Class represents a class section. HomeroomTeacherID stays nil until the
// homeroom assignment pass runs; a teacher holds at most one homeroom.
type Class struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	HomeroomTeacherID *int   `json:"teacherId,omitempty"`
}

// Subject is a static catalog entry, never mutated after generation.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

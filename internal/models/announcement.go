package models

// Announcement is an admin-authored notice shown to all roles.
type Announcement struct {
	ID      int    `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

package dto

// SaveAnnouncementRequest creates or updates an announcement.
type SaveAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

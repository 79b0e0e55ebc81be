package store

import (
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// Announcements returns all announcements, newest first.
func (s *Store) Announcements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.Announcement(nil), s.snap.Announcements...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CreateAnnouncement appends a new announcement and returns it.
func (s *Store) CreateAnnouncement(date, title, content string) models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := models.Announcement{ID: s.nextAnnouncementID, Date: date, Title: title, Content: content}
	s.nextAnnouncementID++
	s.snap.Announcements = append(s.snap.Announcements, a)
	return a
}

// UpdateAnnouncement replaces title and content of an existing announcement.
func (s *Store) UpdateAnnouncement(id int, title, content string) (models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Announcements {
		a := &s.snap.Announcements[i]
		if a.ID == id {
			a.Title = title
			a.Content = content
			return *a, nil
		}
	}
	return models.Announcement{}, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
}

// DeleteAnnouncement removes an announcement.
func (s *Store) DeleteAnnouncement(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Announcements {
		if s.snap.Announcements[i].ID == id {
			s.snap.Announcements = append(s.snap.Announcements[:i], s.snap.Announcements[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
}

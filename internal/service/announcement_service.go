package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type announcementStore interface {
	Announcements() []models.Announcement
	CreateAnnouncement(date, title, content string) models.Announcement
	UpdateAnnouncement(id int, title, content string) (models.Announcement, error)
	DeleteAnnouncement(id int) error
}

// AnnouncementService manages admin-authored announcements.
type AnnouncementService struct {
	store     announcementStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnnouncementService builds an AnnouncementService.
func NewAnnouncementService(store announcementStore, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{store: store, validator: validate, logger: logger, now: time.Now}
}

// List returns all announcements, newest first.
func (s *AnnouncementService) List() []models.Announcement {
	return s.store.Announcements()
}

// Create publishes a new announcement dated today.
func (s *AnnouncementService) Create(req dto.SaveAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	a := s.store.CreateAnnouncement(s.now().Format(models.DateLayout), req.Title, req.Content)
	s.logger.Info("announcement published", zap.Int("announcement_id", a.ID), zap.String("title", a.Title))
	return &a, nil
}

// Update edits an existing announcement's title and content.
func (s *AnnouncementService) Update(id int, req dto.SaveAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	a, err := s.store.UpdateAnnouncement(id, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(id int) error {
	return s.store.DeleteAnnouncement(id)
}

package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type leaveStore interface {
	Leaves() []models.LeaveRequest
	LeavesForTeacher(teacherID int) []models.LeaveRequest
	CreateLeave(teacherID int, teacherName, startDate, endDate, reason string) models.LeaveRequest
	TransitionLeave(id int, status models.LeaveStatus) (models.LeaveRequest, error)
	FindUserByID(id int) (models.User, bool)
}

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type fallbackCounter interface {
	IncTextGenFallback()
}

// LeaveService owns the leave request lifecycle and the AI-assisted text
// helpers around it. Text generation failures never block a workflow: the
// service substitutes a deterministic template and reports the degradation
// through the response and the metrics counter.
type LeaveService struct {
	store     leaveStore
	generator textGenerator
	metrics   fallbackCounter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeaveService builds a LeaveService.
func NewLeaveService(store leaveStore, generator textGenerator, metrics fallbackCounter, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{store: store, generator: generator, metrics: metrics, validator: validate, logger: logger}
}

// List returns leave requests scoped by role: admins see everything,
// teachers see their own.
func (s *LeaveService) List(claims *models.JWTClaims) ([]models.LeaveRequest, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	switch claims.Role {
	case models.RoleAdmin:
		return s.store.Leaves(), nil
	case models.RoleTeacher:
		return s.store.LeavesForTeacher(claims.UserID), nil
	default:
		return nil, appErrors.ErrForbidden
	}
}

// Apply files a new Pending leave request for the calling teacher.
func (s *LeaveService) Apply(ctx context.Context, req dto.ApplyLeaveRequest, claims *models.JWTClaims) (*models.LeaveRequest, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role != models.RoleTeacher {
		return nil, appErrors.ErrForbidden
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave payload")
	}
	if req.EndDate < req.StartDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must not precede startDate")
	}

	teacher, ok := s.store.FindUserByID(claims.UserID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	leave := s.store.CreateLeave(teacher.ID, teacher.Name, req.StartDate, req.EndDate, req.Reason)
	s.logger.Info("leave requested",
		zap.Int("leave_id", leave.ID),
		zap.Int("teacher_id", teacher.ID),
		zap.String("start", leave.StartDate),
		zap.String("end", leave.EndDate))
	return &leave, nil
}

// Approve finalizes a Pending request as Approved and drafts the
// notification email. Approved is terminal; repeated decisions conflict.
func (s *LeaveService) Approve(ctx context.Context, id int) (*dto.LeaveDecisionResponse, error) {
	leave, err := s.store.TransitionLeave(id, models.LeaveStatusApproved)
	if err != nil {
		return nil, err
	}

	body, fellBack := s.approvalEmail(ctx, leave)
	return &dto.LeaveDecisionResponse{Leave: leave, EmailBody: body, Fallback: fellBack}, nil
}

// Reject finalizes a Pending request as Rejected.
func (s *LeaveService) Reject(ctx context.Context, id int) (*dto.LeaveDecisionResponse, error) {
	leave, err := s.store.TransitionLeave(id, models.LeaveStatusRejected)
	if err != nil {
		return nil, err
	}
	return &dto.LeaveDecisionResponse{Leave: leave}, nil
}

// SuggestReason drafts a formal leave reason from a keyword.
func (s *LeaveService) SuggestReason(ctx context.Context, req dto.SuggestReasonRequest) (*dto.SuggestReasonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid suggestion payload")
	}

	prompt := fmt.Sprintf(
		"Write a single short, formal sentence a school teacher could use as the reason on a leave application. The leave is about: %s. Reply with the sentence only.",
		req.Keyword)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.noteFallback("suggest_reason", err)
		fallback := fmt.Sprintf("I would like to request leave due to %s. I will ensure my classes are covered during my absence.", req.Keyword)
		return &dto.SuggestReasonResponse{Reason: fallback, Fallback: true}, nil
	}
	return &dto.SuggestReasonResponse{Reason: text}, nil
}

// approvalEmail drafts the approval notification. On generator failure the
// deterministic template below is substituted so the workflow always
// completes with a non-empty body.
func (s *LeaveService) approvalEmail(ctx context.Context, leave models.LeaveRequest) (string, bool) {
	prompt := fmt.Sprintf(
		"Write a short, warm email to %s confirming their leave from %s to %s has been approved. Mention arranging class coverage. Reply with the email body only.",
		leave.TeacherName, leave.StartDate, leave.EndDate)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.noteFallback("approval_email", err)
		return fmt.Sprintf(
			"Dear %s,\n\nYour leave request from %s to %s has been approved. Please coordinate coverage for your classes before the leave begins.\n\nRegards,\nSchool Administration",
			leave.TeacherName, leave.StartDate, leave.EndDate), true
	}
	return text, false
}

func (s *LeaveService) noteFallback(workflow string, err error) {
	s.logger.Warn("text generation failed, using fallback",
		zap.String("workflow", workflow),
		zap.Error(err))
	if s.metrics != nil {
		s.metrics.IncTextGenFallback()
	}
}

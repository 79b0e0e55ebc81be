package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type leaveStoreStub struct {
	leaves []models.LeaveRequest
	users  map[int]models.User
	nextID int
}

func newLeaveStoreStub() *leaveStoreStub {
	return &leaveStoreStub{
		users: map[int]models.User{
			2: {ID: 2, Name: "Samaira Khan", Role: models.RoleTeacher, Status: models.UserStatusActive},
		},
		nextID: 1,
	}
}

func (s *leaveStoreStub) Leaves() []models.LeaveRequest { return s.leaves }

func (s *leaveStoreStub) LeavesForTeacher(teacherID int) []models.LeaveRequest {
	var out []models.LeaveRequest
	for _, l := range s.leaves {
		if l.TeacherID == teacherID {
			out = append(out, l)
		}
	}
	return out
}

func (s *leaveStoreStub) CreateLeave(teacherID int, teacherName, startDate, endDate, reason string) models.LeaveRequest {
	leave := models.LeaveRequest{
		ID: s.nextID, TeacherID: teacherID, TeacherName: teacherName,
		StartDate: startDate, EndDate: endDate, Reason: reason,
		Status: models.LeaveStatusPending,
	}
	s.nextID++
	s.leaves = append(s.leaves, leave)
	return leave
}

func (s *leaveStoreStub) TransitionLeave(id int, status models.LeaveStatus) (models.LeaveRequest, error) {
	for i := range s.leaves {
		if s.leaves[i].ID != id {
			continue
		}
		if s.leaves[i].Status.Terminal() {
			return models.LeaveRequest{}, appErrors.Clone(appErrors.ErrConflict, "leave request already finalized")
		}
		s.leaves[i].Status = status
		return s.leaves[i], nil
	}
	return models.LeaveRequest{}, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
}

func (s *leaveStoreStub) FindUserByID(id int) (models.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

type generatorStub struct {
	text string
	err  error
}

func (g generatorStub) GenerateText(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

type counterStub struct {
	fallbacks int
}

func (c *counterStub) IncTextGenFallback() { c.fallbacks++ }

func teacherClaims(id int) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: models.RoleTeacher, Name: "Samaira Khan"}
}

func TestLeaveApproveFallsBackToTemplateEmail(t *testing.T) {
	store := newLeaveStoreStub()
	counter := &counterStub{}
	svc := NewLeaveService(store, generatorStub{err: errors.New("upstream down")}, counter, nil, nil)

	leave, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-01", EndDate: "2025-08-03", Reason: "family function",
	}, teacherClaims(2))
	require.NoError(t, err)

	decision, err := svc.Approve(context.Background(), leave.ID)
	require.NoError(t, err)

	assert.True(t, decision.Fallback)
	assert.Equal(t, models.LeaveStatusApproved, decision.Leave.Status)
	assert.Contains(t, decision.EmailBody, "Samaira Khan")
	assert.Contains(t, decision.EmailBody, "2025-08-01")
	assert.Contains(t, decision.EmailBody, "2025-08-03")
	assert.Equal(t, 1, counter.fallbacks)
}

func TestLeaveApproveUsesGeneratedEmail(t *testing.T) {
	store := newLeaveStoreStub()
	counter := &counterStub{}
	svc := NewLeaveService(store, generatorStub{text: "Dear Samaira, enjoy your leave."}, counter, nil, nil)

	leave, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-01", EndDate: "2025-08-03", Reason: "family function",
	}, teacherClaims(2))
	require.NoError(t, err)

	decision, err := svc.Approve(context.Background(), leave.ID)
	require.NoError(t, err)

	assert.False(t, decision.Fallback)
	assert.Equal(t, "Dear Samaira, enjoy your leave.", decision.EmailBody)
	assert.Zero(t, counter.fallbacks)
}

func TestLeaveApproveTwiceConflicts(t *testing.T) {
	store := newLeaveStoreStub()
	svc := NewLeaveService(store, generatorStub{text: "ok"}, nil, nil, nil)

	leave, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-01", EndDate: "2025-08-03", Reason: "family function",
	}, teacherClaims(2))
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), leave.ID)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), leave.ID)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestLeaveSuggestReasonFallback(t *testing.T) {
	counter := &counterStub{}
	svc := NewLeaveService(newLeaveStoreStub(), generatorStub{err: fmt.Errorf("timeout")}, counter, nil, nil)

	res, err := svc.SuggestReason(context.Background(), dto.SuggestReasonRequest{Keyword: "fever"})
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Contains(t, res.Reason, "fever")
	assert.Equal(t, 1, counter.fallbacks)
}

func TestLeaveApplyRequiresTeacherRole(t *testing.T) {
	svc := NewLeaveService(newLeaveStoreStub(), generatorStub{}, nil, nil, nil)

	_, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-01", EndDate: "2025-08-03", Reason: "x",
	}, &models.JWTClaims{UserID: 1, Role: models.RoleAdmin})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}

func TestLeaveApplyRejectsReversedDates(t *testing.T) {
	svc := NewLeaveService(newLeaveStoreStub(), generatorStub{}, nil, nil, nil)

	_, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-03", EndDate: "2025-08-01", Reason: "x",
	}, teacherClaims(2))
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLeaveListScopedByRole(t *testing.T) {
	store := newLeaveStoreStub()
	store.users[3] = models.User{ID: 3, Name: "Vikram Rao", Role: models.RoleTeacher, Status: models.UserStatusActive}
	svc := NewLeaveService(store, generatorStub{}, nil, nil, nil)

	_, err := svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-01", EndDate: "2025-08-02", Reason: "a",
	}, teacherClaims(2))
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), dto.ApplyLeaveRequest{
		StartDate: "2025-08-05", EndDate: "2025-08-06", Reason: "b",
	}, &models.JWTClaims{UserID: 3, Role: models.RoleTeacher})
	require.NoError(t, err)

	all, err := svc.List(&models.JWTClaims{UserID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(teacherClaims(2))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, 2, own[0].TeacherID)

	_, err = svc.List(&models.JWTClaims{UserID: 5, Role: models.RoleStudent})
	require.Error(t, err)
}

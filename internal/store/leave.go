package store

import (
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// Leaves returns all leave requests, newest first.
func (s *Store) Leaves() []models.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.LeaveRequest(nil), s.snap.Leaves...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// LeavesForTeacher returns one teacher's leave requests, newest first.
func (s *Store) LeavesForTeacher(teacherID int) []models.LeaveRequest {
	var out []models.LeaveRequest
	for _, l := range s.Leaves() {
		if l.TeacherID == teacherID {
			out = append(out, l)
		}
	}
	return out
}

// LeaveByID locates a leave request.
func (s *Store) LeaveByID(id int) (models.LeaveRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.snap.Leaves {
		if l.ID == id {
			return l, true
		}
	}
	return models.LeaveRequest{}, false
}

// CreateLeave appends a new Pending request and returns it.
func (s *Store) CreateLeave(teacherID int, teacherName, startDate, endDate, reason string) models.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	leave := models.LeaveRequest{
		ID:          s.nextLeaveID,
		TeacherID:   teacherID,
		TeacherName: teacherName,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      reason,
		Status:      models.LeaveStatusPending,
	}
	s.nextLeaveID++
	s.snap.Leaves = append(s.snap.Leaves, leave)
	return leave
}

// TransitionLeave moves a Pending request to Approved or Rejected. Both
// target states are terminal: a second transition on the same request is
// rejected with a conflict.
func (s *Store) TransitionLeave(id int, status models.LeaveStatus) (models.LeaveRequest, error) {
	if !status.Terminal() {
		return models.LeaveRequest{}, appErrors.Clone(appErrors.ErrValidation, "leave status must be Approved or Rejected")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Leaves {
		l := &s.snap.Leaves[i]
		if l.ID != id {
			continue
		}
		if l.Status.Terminal() {
			return models.LeaveRequest{}, appErrors.Clone(appErrors.ErrConflict, "leave request already finalized")
		}
		l.Status = status
		return *l, nil
	}
	return models.LeaveRequest{}, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
}

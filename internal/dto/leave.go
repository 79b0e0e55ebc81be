package dto

import "github.com/noah-isme/school-portal-api/internal/models"

// ApplyLeaveRequest creates a new Pending leave request for the caller.
type ApplyLeaveRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

// SuggestReasonRequest asks the text-generation helper to draft a formal
// leave reason from a short keyword.
type SuggestReasonRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// SuggestReasonResponse returns the drafted reason. Fallback reports
// whether the deterministic template was substituted for a failed call.
type SuggestReasonResponse struct {
	Reason   string `json:"reason"`
	Fallback bool   `json:"fallback"`
}

// LeaveDecisionResponse returns the finalized request plus the generated
// notification email body for approvals.
type LeaveDecisionResponse struct {
	Leave     models.LeaveRequest `json:"leave"`
	EmailBody string              `json:"emailBody,omitempty"`
	Fallback  bool                `json:"fallback,omitempty"`
}

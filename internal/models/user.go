package models

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the supported variants.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// UserStatus marks whether an account may log in.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents a portal identity. Staff (teachers, admins) log in with
// email and password; student accounts log in with the student display ID
// and date of birth. Role is fixed at creation and never changes.
type User struct {
	ID             int        `json:"id"`
	TeacherID      string     `json:"teacherId,omitempty"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	Qualifications string     `json:"qualifications,omitempty"`
	ProfilePicURL  string     `json:"profilePicUrl,omitempty"`
	StudentRef     *int       `json:"studentId,omitempty"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

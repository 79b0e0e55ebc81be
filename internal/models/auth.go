package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims are the registered claims plus portal identity fields carried in
// access tokens.
type JWTClaims struct {
	UserID    int      `json:"uid"`
	Role      UserRole `json:"role"`
	Name      string   `json:"name"`
	SessionID string   `json:"sid"`
	jwt.RegisteredClaims
}

// SessionUser is the identity snapshot persisted in the session repository
// so a session can be restored without re-authentication.
type SessionUser struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Role          UserRole `json:"role"`
	LoginID       string   `json:"email"`
	TeacherID     string   `json:"teacherId,omitempty"`
	StudentRef    *int     `json:"studentId,omitempty"`
	ProfilePicURL string   `json:"profilePicUrl,omitempty"`
}

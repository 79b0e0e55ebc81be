package dto

import "github.com/noah-isme/school-portal-api/internal/models"

// LoginRequest carries role-aware credentials: staff send email + password,
// students send their display ID + date of birth.
type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
}

// LoginResponse returns the issued token and the restored identity.
type LoginResponse struct {
	AccessToken string             `json:"accessToken"`
	ExpiresIn   int64              `json:"expiresIn"`
	User        models.SessionUser `json:"user"`
}

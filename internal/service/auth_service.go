package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/session"
)

type authDirectory interface {
	FindUserByEmail(email string, role models.UserRole) (models.User, bool)
	FindUserByID(id int) (models.User, bool)
	FindStudentByLogin(displayID, dob string) (models.Student, bool)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
	SessionTTL time.Duration
}

// AuthService provides role-aware login, token validation and session
// restoration. Login failures are uniform: callers cannot tell an unknown
// identity from a wrong secret.
type AuthService struct {
	directory authDirectory
	sessions  session.Repository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(directory authDirectory, sessions session.Repository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{directory: directory, sessions: sessions, validator: validate, logger: logger, config: config}
}

// Login authenticates a user for the requested role and returns an access
// token plus the identity snapshot persisted to the session repository.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	role := models.UserRole(req.Role)
	user, err := s.resolveIdentity(req, role)
	if err != nil {
		return nil, err
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, user, s.config.SessionTTL); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}

	token, err := s.generateAccessToken(user, sid)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
		User:        user,
	}, nil
}

func (s *AuthService) resolveIdentity(req dto.LoginRequest, role models.UserRole) (models.SessionUser, error) {
	if role == models.RoleStudent {
		student, ok := s.directory.FindStudentByLogin(req.LoginID, req.Password)
		if !ok {
			return models.SessionUser{}, appErrors.ErrInvalidCredentials
		}
		ref := student.ID
		return models.SessionUser{
			ID:            student.ID,
			Name:          student.Name,
			Role:          models.RoleStudent,
			LoginID:       student.DisplayID,
			StudentRef:    &ref,
			ProfilePicURL: student.ProfilePicURL,
		}, nil
	}

	user, ok := s.directory.FindUserByEmail(req.LoginID, role)
	if !ok {
		return models.SessionUser{}, appErrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return models.SessionUser{}, appErrors.ErrInactiveAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return models.SessionUser{}, appErrors.ErrInvalidCredentials
	}

	return models.SessionUser{
		ID:            user.ID,
		Name:          user.Name,
		Role:          user.Role,
		LoginID:       user.Email,
		TeacherID:     user.TeacherID,
		StudentRef:    user.StudentRef,
		ProfilePicURL: user.ProfilePicURL,
	}, nil
}

// Session restores the identity stored for a session ID.
func (s *AuthService) Session(ctx context.Context, sid string) (*models.SessionUser, error) {
	user, err := s.sessions.Find(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session expired")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return &user, nil
}

// Logout clears the stored session.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.logger.Warn("failed to clear session", zap.Error(err))
	}
	return nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(user models.SessionUser, sid string) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		UserID:    user.ID,
		Role:      user.Role,
		Name:      user.Name,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

package service

import (
	"context"

	"github.com/spec-kit/group-allocator/internal/auth"
	"github.com/spec-kit/group-allocator/internal/config"
	"github.com/spec-kit/group-allocator/internal/domain"
	apperrors "github.com/spec-kit/group-allocator/pkg/util/errorutil"
)

// AuthService issues organizer tokens.
type AuthService struct {
	tokenMgr     *auth.TokenManager
	passwordHash string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		passwordHash: cfg.OrganizerPasswordHash,
	}
}

// TokenManager exposes the token manager for middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Enabled reports whether an organizer password is configured.
func (s *AuthService) Enabled() bool {
	return s.passwordHash != ""
}

// LoginOrganizer exchanges the organizer password for a token.
func (s *AuthService) LoginOrganizer(ctx context.Context, password string) (domain.Token, error) {
	if !s.Enabled() {
		return domain.Token{}, apperrors.NewConflict("organizer authentication is disabled", nil)
	}
	if err := auth.ComparePassword(s.passwordHash, password); err != nil {
		return domain.Token{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, err := s.tokenMgr.GenerateToken(domain.SubjectTypeOrganizer)
	if err != nil {
		return domain.Token{}, apperrors.NewInternalError(err)
	}
	return token, nil
}

// internal/core/services/auth.go
package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// TokenSink receives the bearer token after a successful login so the REST
// client can attach it to subsequent requests.
type TokenSink interface {
	SetToken(token string)
}

// AuthService holds the signed-in user for the lifetime of the process.
// "Not authenticated" is a normal state here, not an error: failures on the
// logout and current-user paths degrade to an empty session instead of
// propagating.
type AuthService struct {
	repo   ports.AuthRepository
	tokens TokenSink
	logger *slog.Logger

	mu   sync.RWMutex
	user *domain.User
}

var _ ports.Session = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(repo ports.AuthRepository, tokens TokenSink, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		logger: logger.With(slog.String("service", "auth")),
	}
}

// Login authenticates against the API and stores the session user and token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	user, token, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return nil, domain.NewOperationFailed("login", "", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	if s.tokens != nil {
		s.tokens.SetToken(token)
	}

	s.logger.InfoContext(ctx, "signed in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))

	return user, nil
}

// Logout clears the session. A failed logout call is logged and otherwise
// ignored; the local session is cleared regardless.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.repo.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "logout call failed, clearing session anyway",
			slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if s.tokens != nil {
		s.tokens.SetToken("")
	}
}

// CurrentUser returns the signed-in user, refreshing from the API when the
// local session is empty. A failed refresh degrades to nil.
func (s *AuthService) CurrentUser(ctx context.Context) *domain.User {
	s.mu.RLock()
	cached := s.user
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	user, err := s.repo.Me(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "current-user lookup failed, treating as signed out",
			slog.String("error", err.Error()))
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user
}

// IsAdmin reports whether the signed-in user holds the admin role.
func (s *AuthService) IsAdmin(ctx context.Context) bool {
	return s.CurrentUser(ctx).IsAdmin()
}

// internal/adapters/rest/auth_repository.go
package rest

import (
	"context"
	"log/slog"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// authRepository implements ports.AuthRepository against the REST API.
type authRepository struct {
	client *Client
	logger *slog.Logger
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(client *Client, logger *slog.Logger) ports.AuthRepository {
	return &authRepository{
		client: client,
		logger: logger.With(slog.String("repository", "auth")),
	}
}

// Login exchanges credentials for the session user and a bearer token.
func (r *authRepository) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	payload, err := r.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	record, err := normalizeObject("/auth/login", payload)
	if err != nil {
		return nil, "", err
	}

	token, _ := record["token"].(string)
	if token == "" {
		token, _ = record["access_token"].(string)
	}

	userRecord := record
	if inner, ok := record["user"].(map[string]any); ok {
		userRecord = domain.Payload(inner)
	}
	user, err := domain.UserFromPayload(userRecord)
	if err != nil {
		return nil, "", &domain.MalformedResponseError{Endpoint: "/auth/login", Payload: payload}
	}

	r.logger.DebugContext(ctx, "login succeeded", slog.Int64("user_id", user.ID))
	return user, token, nil
}

// Logout invalidates the server-side session.
func (r *authRepository) Logout(ctx context.Context) error {
	_, err := r.client.Post(ctx, "/auth/logout", nil)
	return err
}

// Me returns the user the current token belongs to.
func (r *authRepository) Me(ctx context.Context) (*domain.User, error) {
	return fetchOne(ctx, r.client, "/auth/me", nil, domain.UserFromPayload)
}

// internal/adapters/rest/user_repository.go
package rest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

const usersPath = "/users"

// userRepository implements ports.UserRepository against the REST API.
type userRepository struct {
	client *Client
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *Client, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		client: client,
		logger: logger.With(slog.String("repository", "user")),
	}
}

func (r *userRepository) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.User], error) {
	return fetchList(ctx, r.client, usersPath, listQuery(params), params, domain.UserFromPayload)
}

func (r *userRepository) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.User], error) {
	return fetchList(ctx, r.client, usersPath+"/deleted", listQuery(params), params, domain.UserFromPayload)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return fetchOne(ctx, r.client, fmt.Sprintf("%s/%d", usersPath, id), nil, domain.UserFromPayload)
}

func (r *userRepository) SearchByField(ctx context.Context, field, query string, params ports.ListParams) (*ports.Page[domain.User], error) {
	q := listQuery(params)
	q.Set(field, query)
	return fetchList(ctx, r.client, usersPath, q, params, domain.UserFromPayload)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := submitOne(ctx, r.client, "POST", usersPath, user, domain.UserFromPayload)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "user created", slog.Int64("id", created.ID))
	return created, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	return submitOne(ctx, r.client, "PUT", fmt.Sprintf("%s/%d", usersPath, id), user, domain.UserFromPayload)
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", usersPath, id))
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

func (r *userRepository) Restore(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Post(ctx, fmt.Sprintf("%s/%d/restore", usersPath, id), nil)
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

// internal/core/services/user.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// UserService manages dashboard user accounts. All mutating operations are
// admin-gated at this layer.
type UserService struct {
	repo    ports.UserRepository
	session ports.Session
	logger  *slog.Logger
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo ports.UserRepository, session ports.Session, logger *slog.Logger) *UserService {
	return &UserService{
		repo:    repo,
		session: session,
		logger:  logger.With(slog.String("service", "user")),
	}
}

// List retrieves a page of active users.
func (s *UserService) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.User], error) {
	page, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list users", "", err)
	}
	return page, nil
}

// ListDeleted retrieves a page of soft-deleted users.
func (s *UserService) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.User], error) {
	page, err := s.repo.ListDeleted(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list deleted users", "", err)
	}
	return page, nil
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("get user", "", err)
	}
	if user == nil {
		return nil, domain.NewOperationFailed("get user", "user not found", nil)
	}
	return user, nil
}

// Create validates the input and creates a new user account. Admin only.
func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	if !s.session.IsAdmin(ctx) {
		return nil, domain.ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if !domain.ValidEmail(input.Email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return nil, domain.NewValidationError("role", "must be admin or staff")
	}

	user := &domain.User{
		Name:   strings.TrimSpace(input.Name),
		Email:  input.Email,
		Phone:  input.Phone,
		Role:   role,
		Active: true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, domain.NewOperationFailed("create user", "", err)
	}

	s.logger.InfoContext(ctx, "user created",
		slog.Int64("id", created.ID),
		slog.String("role", string(created.Role)))

	return created, nil
}

// Update merges a partial update into the stored record and re-validates the
// merged result before delegating. Admin only.
func (s *UserService) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return nil, domain.ErrPermissionDenied
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("update user", "", err)
	}
	if existing == nil {
		return nil, domain.NewOperationFailed("update user", "user not found", nil)
	}

	merged := *existing
	applyString(&merged.Name, patch.Name)
	applyString(&merged.Email, patch.Email)
	applyString(&merged.Phone, patch.Phone)
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.Active != nil {
		merged.Active = *patch.Active
	}

	if !merged.IsValid() {
		return nil, domain.NewValidationError("user", "merged update fails required field checks")
	}
	if merged.Role != domain.RoleAdmin && merged.Role != domain.RoleStaff {
		return nil, domain.NewValidationError("role", "must be admin or staff")
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		return nil, domain.NewOperationFailed("update user", "", err)
	}

	s.logger.InfoContext(ctx, "user updated", slog.Int64("id", id))

	return updated, nil
}

// Delete soft-deletes a user account. Admin only.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("delete user", "", err)
	}
	s.logger.InfoContext(ctx, "user deleted", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// Restore reverses a soft delete. Admin only.
func (s *UserService) Restore(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Restore(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("restore user", "", err)
	}
	s.logger.InfoContext(ctx, "user restored", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// SearchByField issues a single field-scoped search.
func (s *UserService) SearchByField(ctx context.Context, field, query string, params ports.SearchParams) (*ports.Page[domain.User], error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("query", "is required")
	}
	page, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
	if err != nil {
		return nil, domain.NewOperationFailed("search users", "", err)
	}
	return page, nil
}

// Search tries name, email and phone in sequence and returns the first
// non-empty page; results are never merged across fields.
func (s *UserService) Search(ctx context.Context, query string, params ports.SearchParams) (*ports.Page[domain.User], error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, domain.NewValidationError("query", "must be at least 2 characters")
	}

	var page *ports.Page[domain.User]
	for _, field := range []string{"name", "email", "phone"} {
		result, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
		if err != nil {
			return nil, domain.NewOperationFailed("search users", "", err)
		}
		page = result
		if len(result.Items) > 0 {
			break
		}
	}
	return page, nil
}

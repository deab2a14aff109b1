// internal/core/services/customer.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// CustomerService enforces the business rules that are cheap to check
// client-side before spending a round trip, then delegates to the REST
// repository.
type CustomerService struct {
	repo    ports.CustomerRepository
	session ports.Session
	logger  *slog.Logger
}

// Statically assert that *CustomerService implements the CustomerService port.
var _ ports.CustomerService = (*CustomerService)(nil)

// NewCustomerService creates a new customer service
func NewCustomerService(repo ports.CustomerRepository, session ports.Session, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:    repo,
		session: session,
		logger:  logger.With(slog.String("service", "customer")),
	}
}

// List retrieves a page of active customers.
func (s *CustomerService) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Customer], error) {
	page, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list customers", "", err)
	}
	return page, nil
}

// ListDeleted retrieves a page of soft-deleted customers.
func (s *CustomerService) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Customer], error) {
	page, err := s.repo.ListDeleted(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list deleted customers", "", err)
	}
	return page, nil
}

// GetByID retrieves a single customer.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("get customer", "", err)
	}
	if customer == nil {
		return nil, domain.NewOperationFailed("get customer", "customer not found", nil)
	}
	return customer, nil
}

// GetByEmail looks up a single customer by exact email.
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	customer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewOperationFailed("lookup customer", "", err)
	}
	return customer, nil
}

// GetByPhone looks up a single customer by exact phone number.
func (s *CustomerService) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if !domain.ValidPhone(phone) {
		return nil, domain.NewValidationError("phone", "is not a valid phone number")
	}
	customer, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, domain.NewOperationFailed("lookup customer", "", err)
	}
	return customer, nil
}

// Create validates the input and creates a new customer.
func (s *CustomerService) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if !domain.ValidEmail(input.Email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	if input.Phone != "" && !domain.ValidPhone(input.Phone) {
		return nil, domain.NewValidationError("phone", "is not a valid phone number")
	}

	customer := &domain.Customer{
		Name:    strings.TrimSpace(input.Name),
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
		Debts:   []domain.Debt{},
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, domain.NewOperationFailed("create customer", "", err)
	}

	s.logger.InfoContext(ctx, "customer created",
		slog.Int64("id", created.ID),
		slog.String("name", created.Name))

	return created, nil
}

// Update merges a partial update into the stored record and re-validates the
// merged result before delegating, so a patch can never silently produce a
// customer that fails domain invariants.
func (s *CustomerService) Update(ctx context.Context, id int64, patch ports.CustomerPatch) (*domain.Customer, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("update customer", "", err)
	}
	if existing == nil {
		return nil, domain.NewOperationFailed("update customer", "customer not found", nil)
	}

	merged := *existing
	applyString(&merged.Name, patch.Name)
	applyString(&merged.Email, patch.Email)
	applyString(&merged.Phone, patch.Phone)
	applyString(&merged.Address, patch.Address)
	applyString(&merged.Notes, patch.Notes)

	if !merged.IsValid() {
		return nil, domain.NewValidationError("customer", "merged update fails required field checks")
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		return nil, domain.NewOperationFailed("update customer", "", err)
	}

	s.logger.InfoContext(ctx, "customer updated", slog.Int64("id", id))

	return updated, nil
}

// Delete soft-deletes a customer. Admin only.
func (s *CustomerService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("delete customer", "", err)
	}
	s.logger.InfoContext(ctx, "customer deleted", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// Restore reverses a soft delete. Admin only.
func (s *CustomerService) Restore(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Restore(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("restore customer", "", err)
	}
	s.logger.InfoContext(ctx, "customer restored", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// SearchByField issues a single field-scoped search.
func (s *CustomerService) SearchByField(ctx context.Context, field, query string, params ports.SearchParams) (*ports.Page[domain.Customer], error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("query", "is required")
	}
	page, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
	if err != nil {
		return nil, domain.NewOperationFailed("search customers", "", err)
	}
	return page, nil
}

// Search tries the name, email and phone fields in sequence and returns the
// first non-empty page. Results are never merged across fields; if the name
// search returns zero rows the email field is tried next, then phone.
func (s *CustomerService) Search(ctx context.Context, query string, params ports.SearchParams) (*ports.Page[domain.Customer], error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, domain.NewValidationError("query", "must be at least 2 characters")
	}

	var page *ports.Page[domain.Customer]
	for _, field := range []string{"name", "email", "phone"} {
		result, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
		if err != nil {
			return nil, domain.NewOperationFailed("search customers", "", err)
		}
		page = result
		if len(result.Items) > 0 {
			break
		}
	}
	return page, nil
}

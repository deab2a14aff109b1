// internal/core/services/supplier.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// SupplierService mirrors CustomerService for supplier records.
type SupplierService struct {
	repo    ports.SupplierRepository
	session ports.Session
	logger  *slog.Logger
}

var _ ports.SupplierService = (*SupplierService)(nil)

// NewSupplierService creates a new supplier service
func NewSupplierService(repo ports.SupplierRepository, session ports.Session, logger *slog.Logger) *SupplierService {
	return &SupplierService{
		repo:    repo,
		session: session,
		logger:  logger.With(slog.String("service", "supplier")),
	}
}

// List retrieves a page of active suppliers.
func (s *SupplierService) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Supplier], error) {
	page, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list suppliers", "", err)
	}
	return page, nil
}

// ListDeleted retrieves a page of soft-deleted suppliers.
func (s *SupplierService) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Supplier], error) {
	page, err := s.repo.ListDeleted(ctx, params)
	if err != nil {
		return nil, domain.NewOperationFailed("list deleted suppliers", "", err)
	}
	return page, nil
}

// GetByID retrieves a single supplier.
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("get supplier", "", err)
	}
	if supplier == nil {
		return nil, domain.NewOperationFailed("get supplier", "supplier not found", nil)
	}
	return supplier, nil
}

// GetByEmail looks up a single supplier by exact email.
func (s *SupplierService) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	supplier, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewOperationFailed("lookup supplier", "", err)
	}
	return supplier, nil
}

// GetByPhone looks up a single supplier by exact phone number.
func (s *SupplierService) GetByPhone(ctx context.Context, phone string) (*domain.Supplier, error) {
	if !domain.ValidPhone(phone) {
		return nil, domain.NewValidationError("phone", "is not a valid phone number")
	}
	supplier, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, domain.NewOperationFailed("lookup supplier", "", err)
	}
	return supplier, nil
}

// Create validates the input and creates a new supplier.
func (s *SupplierService) Create(ctx context.Context, input ports.SupplierInput) (*domain.Supplier, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if !domain.ValidEmail(input.Email) {
		return nil, domain.NewValidationError("email", "must have the shape local@domain.tld")
	}
	if input.Phone != "" && !domain.ValidPhone(input.Phone) {
		return nil, domain.NewValidationError("phone", "is not a valid phone number")
	}

	supplier := &domain.Supplier{
		Name:    strings.TrimSpace(input.Name),
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
		Debts:   []domain.Debt{},
	}

	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		return nil, domain.NewOperationFailed("create supplier", "", err)
	}

	s.logger.InfoContext(ctx, "supplier created",
		slog.Int64("id", created.ID),
		slog.String("name", created.Name))

	return created, nil
}

// Update merges a partial update into the stored record and re-validates the
// merged result before delegating.
func (s *SupplierService) Update(ctx context.Context, id int64, patch ports.SupplierPatch) (*domain.Supplier, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewOperationFailed("update supplier", "", err)
	}
	if existing == nil {
		return nil, domain.NewOperationFailed("update supplier", "supplier not found", nil)
	}

	merged := *existing
	applyString(&merged.Name, patch.Name)
	applyString(&merged.Company, patch.Company)
	applyString(&merged.Email, patch.Email)
	applyString(&merged.Phone, patch.Phone)
	applyString(&merged.Address, patch.Address)
	applyString(&merged.Notes, patch.Notes)

	if !merged.IsValid() {
		return nil, domain.NewValidationError("supplier", "merged update fails required field checks")
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		return nil, domain.NewOperationFailed("update supplier", "", err)
	}

	s.logger.InfoContext(ctx, "supplier updated", slog.Int64("id", id))

	return updated, nil
}

// Delete soft-deletes a supplier. Admin only.
func (s *SupplierService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("delete supplier", "", err)
	}
	s.logger.InfoContext(ctx, "supplier deleted", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// Restore reverses a soft delete. Admin only.
func (s *SupplierService) Restore(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be positive")
	}
	if !s.session.IsAdmin(ctx) {
		return false, domain.ErrPermissionDenied
	}
	ok, err := s.repo.Restore(ctx, id)
	if err != nil {
		return false, domain.NewOperationFailed("restore supplier", "", err)
	}
	s.logger.InfoContext(ctx, "supplier restored", slog.Int64("id", id), slog.Bool("ok", ok))
	return ok, nil
}

// SearchByField issues a single field-scoped search.
func (s *SupplierService) SearchByField(ctx context.Context, field, query string, params ports.SearchParams) (*ports.Page[domain.Supplier], error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("query", "is required")
	}
	page, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
	if err != nil {
		return nil, domain.NewOperationFailed("search suppliers", "", err)
	}
	return page, nil
}

// Search tries name, email and phone in sequence and returns the first
// non-empty page; results are never merged across fields.
func (s *SupplierService) Search(ctx context.Context, query string, params ports.SearchParams) (*ports.Page[domain.Supplier], error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, domain.NewValidationError("query", "must be at least 2 characters")
	}

	var page *ports.Page[domain.Supplier]
	for _, field := range []string{"name", "email", "phone"} {
		result, err := s.repo.SearchByField(ctx, field, query, listParamsFrom(params))
		if err != nil {
			return nil, domain.NewOperationFailed("search suppliers", "", err)
		}
		page = result
		if len(result.Items) > 0 {
			break
		}
	}
	return page, nil
}

// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// CreateTestCustomer creates a valid customer record, optionally modified by opts.
func CreateTestCustomer(opts ...func(*domain.Customer)) *domain.Customer {
	customer := &domain.Customer{
		ID:        1,
		Name:      "Maria Lopez",
		Email:     "maria.lopez@example.com",
		Phone:     "+1 555-0101",
		Address:   "12 Harbor St",
		Debts:     []domain.Debt{},
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(customer)
	}
	return customer
}

// CreateTestSupplier creates a valid supplier record, optionally modified by opts.
func CreateTestSupplier(opts ...func(*domain.Supplier)) *domain.Supplier {
	supplier := &domain.Supplier{
		ID:        1,
		Name:      "Carlos Vega",
		Company:   "Vega Distribution",
		Email:     "carlos@vegadist.example.com",
		Phone:     "+1 555-0202",
		Debts:     []domain.Debt{},
		CreatedAt: time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(supplier)
	}
	return supplier
}

// CreateTestUser creates a valid staff user record, optionally modified by opts.
func CreateTestUser(opts ...func(*domain.User)) *domain.User {
	user := &domain.User{
		ID:        1,
		Name:      "Ana Ruiz",
		Email:     "ana.ruiz@example.com",
		Role:      domain.RoleStaff,
		Active:    true,
		CreatedAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(user)
	}
	return user
}

// CreateTestDebt creates an unsettled debt, optionally modified by opts.
func CreateTestDebt(opts ...func(*domain.Debt)) domain.Debt {
	debt := domain.Debt{
		ID:      1,
		Amount:  decimal.NewFromFloat(150.00),
		DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&debt)
	}
	return debt
}

// PageOf wraps items in a canonical page with full-count metadata.
func PageOf[T any](items []T, page, pageSize int) *ports.Page[T] {
	return ports.NewPage(items, int64(len(items)), page, pageSize)
}

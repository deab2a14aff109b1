// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

// CustomerInput carries the fields accepted when creating a customer.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// CustomerPatch carries a partial update; nil fields are left untouched.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// SupplierInput carries the fields accepted when creating a supplier.
type SupplierInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// SupplierPatch carries a partial update; nil fields are left untouched.
type SupplierPatch struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// UserInput carries the fields accepted when creating a user.
type UserInput struct {
	Name  string
	Email string
	Phone string
	Role  domain.Role
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Role   *domain.Role
	Active *bool
}

// SearchParams scopes a search or list call: paging plus sort.
type SearchParams struct {
	Take      int
	Skip      int
	SortBy    string
	SortOrder string
}

// CustomerService defines the application service port for customers.
type CustomerService interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Customer], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.Customer], error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	SearchByField(ctx context.Context, field, query string, params SearchParams) (*Page[domain.Customer], error)
	Search(ctx context.Context, query string, params SearchParams) (*Page[domain.Customer], error)
}

// SupplierService defines the application service port for suppliers.
type SupplierService interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Supplier], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.Supplier], error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Supplier, error)
	Create(ctx context.Context, input SupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, id int64, patch SupplierPatch) (*domain.Supplier, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	SearchByField(ctx context.Context, field, query string, params SearchParams) (*Page[domain.Supplier], error)
	Search(ctx context.Context, query string, params SearchParams) (*Page[domain.Supplier], error)
}

// UserService defines the application service port for dashboard users.
type UserService interface {
	List(ctx context.Context, params ListParams) (*Page[domain.User], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.User], error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	SearchByField(ctx context.Context, field, query string, params SearchParams) (*Page[domain.User], error)
	Search(ctx context.Context, query string, params SearchParams) (*Page[domain.User], error)
}

// Session reports who is currently signed in. IsAdmin gates destructive and
// export actions at the service layer; it is a UX convenience, not a security
// boundary — the server enforces authorization on every call.
type Session interface {
	CurrentUser(ctx context.Context) *domain.User
	IsAdmin(ctx context.Context) bool
}

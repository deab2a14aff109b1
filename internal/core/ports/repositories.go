// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

// CustomerRepository defines the API-client port for customers.
// This interface is implemented by the REST adapter.
type CustomerRepository interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Customer], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.Customer], error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	SearchByField(ctx context.Context, field, query string, params ListParams) (*Page[domain.Customer], error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id int64, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
}

// SupplierRepository defines the API-client port for suppliers.
type SupplierRepository interface {
	List(ctx context.Context, params ListParams) (*Page[domain.Supplier], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.Supplier], error)
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*domain.Supplier, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Supplier, error)
	SearchByField(ctx context.Context, field, query string, params ListParams) (*Page[domain.Supplier], error)
	Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, id int64, supplier *domain.Supplier) (*domain.Supplier, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
}

// UserRepository defines the API-client port for dashboard users.
type UserRepository interface {
	List(ctx context.Context, params ListParams) (*Page[domain.User], error)
	ListDeleted(ctx context.Context, params ListParams) (*Page[domain.User], error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	SearchByField(ctx context.Context, field, query string, params ListParams) (*Page[domain.User], error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
}

// AuthRepository defines the API-client port for session endpoints.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}

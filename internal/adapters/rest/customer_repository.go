// internal/adapters/rest/customer_repository.go
package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

const customersPath = "/customers"

// customerRepository implements ports.CustomerRepository against the REST API.
type customerRepository struct {
	client *Client
	logger *slog.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(client *Client, logger *slog.Logger) ports.CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger.With(slog.String("repository", "customer")),
	}
}

func (r *customerRepository) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Customer], error) {
	return fetchList(ctx, r.client, customersPath, listQuery(params), params, domain.CustomerFromPayload)
}

func (r *customerRepository) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Customer], error) {
	return fetchList(ctx, r.client, customersPath+"/deleted", listQuery(params), params, domain.CustomerFromPayload)
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return fetchOne(ctx, r.client, fmt.Sprintf("%s/%d", customersPath, id), nil, domain.CustomerFromPayload)
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	q := url.Values{}
	q.Set("email", email)
	return fetchOne(ctx, r.client, customersPath+"/lookup", q, domain.CustomerFromPayload)
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	q := url.Values{}
	q.Set("phone", phone)
	return fetchOne(ctx, r.client, customersPath+"/lookup", q, domain.CustomerFromPayload)
}

func (r *customerRepository) SearchByField(ctx context.Context, field, query string, params ports.ListParams) (*ports.Page[domain.Customer], error) {
	q := listQuery(params)
	q.Set(field, query)
	return fetchList(ctx, r.client, customersPath, q, params, domain.CustomerFromPayload)
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	created, err := submitOne(ctx, r.client, "POST", customersPath, customer, domain.CustomerFromPayload)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "customer created", slog.Int64("id", created.ID))
	return created, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, customer *domain.Customer) (*domain.Customer, error) {
	return submitOne(ctx, r.client, "PUT", fmt.Sprintf("%s/%d", customersPath, id), customer, domain.CustomerFromPayload)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", customersPath, id))
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

func (r *customerRepository) Restore(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Post(ctx, fmt.Sprintf("%s/%d/restore", customersPath, id), nil)
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

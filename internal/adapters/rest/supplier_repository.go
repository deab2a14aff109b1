// internal/adapters/rest/supplier_repository.go
package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

const suppliersPath = "/suppliers"

// supplierRepository implements ports.SupplierRepository against the REST API.
type supplierRepository struct {
	client *Client
	logger *slog.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(client *Client, logger *slog.Logger) ports.SupplierRepository {
	return &supplierRepository{
		client: client,
		logger: logger.With(slog.String("repository", "supplier")),
	}
}

func (r *supplierRepository) List(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Supplier], error) {
	return fetchList(ctx, r.client, suppliersPath, listQuery(params), params, domain.SupplierFromPayload)
}

func (r *supplierRepository) ListDeleted(ctx context.Context, params ports.ListParams) (*ports.Page[domain.Supplier], error) {
	return fetchList(ctx, r.client, suppliersPath+"/deleted", listQuery(params), params, domain.SupplierFromPayload)
}

func (r *supplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	return fetchOne(ctx, r.client, fmt.Sprintf("%s/%d", suppliersPath, id), nil, domain.SupplierFromPayload)
}

func (r *supplierRepository) FindByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	q := url.Values{}
	q.Set("email", email)
	return fetchOne(ctx, r.client, suppliersPath+"/lookup", q, domain.SupplierFromPayload)
}

func (r *supplierRepository) FindByPhone(ctx context.Context, phone string) (*domain.Supplier, error) {
	q := url.Values{}
	q.Set("phone", phone)
	return fetchOne(ctx, r.client, suppliersPath+"/lookup", q, domain.SupplierFromPayload)
}

func (r *supplierRepository) SearchByField(ctx context.Context, field, query string, params ports.ListParams) (*ports.Page[domain.Supplier], error) {
	q := listQuery(params)
	q.Set(field, query)
	return fetchList(ctx, r.client, suppliersPath, q, params, domain.SupplierFromPayload)
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	created, err := submitOne(ctx, r.client, "POST", suppliersPath, supplier, domain.SupplierFromPayload)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "supplier created", slog.Int64("id", created.ID))
	return created, nil
}

func (r *supplierRepository) Update(ctx context.Context, id int64, supplier *domain.Supplier) (*domain.Supplier, error) {
	return submitOne(ctx, r.client, "PUT", fmt.Sprintf("%s/%d", suppliersPath, id), supplier, domain.SupplierFromPayload)
}

func (r *supplierRepository) Delete(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", suppliersPath, id))
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

func (r *supplierRepository) Restore(ctx context.Context, id int64) (bool, error) {
	payload, err := r.client.Post(ctx, fmt.Sprintf("%s/%d/restore", suppliersPath, id), nil)
	if err != nil {
		return false, err
	}
	return normalizeAck(payload), nil
}

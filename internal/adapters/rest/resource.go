// internal/adapters/rest/resource.go
package rest

import (
	"context"
	"net/url"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// decodeFunc turns one normalized record into a typed entity. Every entity in
// a response goes through the domain constructor, so the collections returned
// upward are type-safe regardless of the backend shape.
type decodeFunc[T any] func(domain.Payload) (*T, error)

// fetchList performs a list call and reduces the response to a canonical
// page. Pagination coordinates come from the response when the shape carried
// them, otherwise they are derived from the request's skip/take.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, q url.Values, params ports.ListParams, decode decodeFunc[T]) (*ports.Page[T], error) {
	payload, err := c.Get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}
	lp, err := normalizeList(endpoint, payload)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(lp.items))
	for _, rec := range lp.items {
		entity, err := decode(rec)
		if err != nil || entity == nil {
			continue
		}
		items = append(items, *entity)
	}

	page, size := 1, params.Take
	if lp.hasPage {
		page, size = lp.page, lp.pageSize
	} else if size > 0 {
		page = params.Skip/size + 1
	} else {
		size = len(items)
	}

	total := lp.total
	if !lp.hasTotal && total < int64(len(items)) {
		total = int64(len(items))
	}

	return ports.NewPage(items, total, page, size), nil
}

// fetchOne performs a single-record call and decodes the result.
func fetchOne[T any](ctx context.Context, c *Client, endpoint string, q url.Values, decode decodeFunc[T]) (*T, error) {
	payload, err := c.Get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}
	record, err := normalizeObject(endpoint, payload)
	if err != nil {
		return nil, err
	}
	return decode(record)
}

// submitOne POSTs or PUTs a record and decodes the entity echoed back.
func submitOne[T any](ctx context.Context, c *Client, method, endpoint string, body any, decode decodeFunc[T]) (*T, error) {
	var payload any
	var err error
	switch method {
	case "PUT":
		payload, err = c.Put(ctx, endpoint, body)
	default:
		payload, err = c.Post(ctx, endpoint, body)
	}
	if err != nil {
		return nil, err
	}
	record, err := normalizeObject(endpoint, payload)
	if err != nil {
		return nil, err
	}
	return decode(record)
}

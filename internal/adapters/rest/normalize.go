// internal/adapters/rest/normalize.go
package rest

import (
	"github.com/haroldmz/stockdesk/internal/core/domain"
)

// The upstream API does not return one canonical shape: list endpoints have
// been observed to answer with a paginated envelope, a flat array, data/items/
// results wrappers, a Spring-style page object, or a success envelope around
// any of the above. Normalization tries an ordered sequence of pure shape
// matchers and maps the first match into the canonical page; an unmatched
// payload is a hard MalformedResponseError with the raw payload attached.

// listPayload is the intermediate form every recognized list shape reduces to.
type listPayload struct {
	items    []domain.Payload
	total    int64
	page     int
	pageSize int
	hasTotal bool
	hasPage  bool
}

type shapeMatcher func(payload any) (*listPayload, bool)

func listMatchers() []shapeMatcher {
	return []shapeMatcher{
		matchPagedEnvelope,
		matchFlatArray,
		matchKeyedArray("data"),
		matchKeyedArray("items"),
		matchKeyedArray("results"),
		matchSpringPage,
		matchSuccessEnvelope,
	}
}

// normalizeList maps payload into the canonical intermediate list form.
func normalizeList(endpoint string, payload any) (*listPayload, error) {
	for _, match := range listMatchers() {
		if lp, ok := match(payload); ok {
			return lp, nil
		}
	}
	return nil, &domain.MalformedResponseError{Endpoint: endpoint, Payload: payload}
}

// matchPagedEnvelope recognizes {items: [...], total: N, page, page_size}.
func matchPagedEnvelope(payload any) (*listPayload, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	raw, ok := arrayAt(m, "items")
	if !ok {
		return nil, false
	}
	total, ok := numberAt(m, "total", "total_count", "totalCount", "count")
	if !ok {
		return nil, false
	}
	lp := &listPayload{items: toPayloads(raw), total: total, hasTotal: true}
	if page, ok := numberAt(m, "page", "current_page", "currentPage"); ok {
		if size, ok := numberAt(m, "page_size", "pageSize", "per_page", "limit"); ok {
			lp.page = int(page)
			lp.pageSize = int(size)
			lp.hasPage = true
		}
	}
	return lp, true
}

// matchFlatArray recognizes a bare JSON array.
func matchFlatArray(payload any) (*listPayload, bool) {
	raw, ok := payload.([]any)
	if !ok {
		return nil, false
	}
	items := toPayloads(raw)
	return &listPayload{items: items, total: int64(len(items))}, true
}

// matchKeyedArray recognizes {<key>: [...]} with no reliable total.
func matchKeyedArray(key string) shapeMatcher {
	return func(payload any) (*listPayload, bool) {
		m, ok := payload.(map[string]any)
		if !ok {
			return nil, false
		}
		raw, ok := arrayAt(m, key)
		if !ok {
			return nil, false
		}
		items := toPayloads(raw)
		lp := &listPayload{items: items, total: int64(len(items))}
		if total, ok := numberAt(m, "total", "total_count", "totalCount"); ok {
			lp.total = total
			lp.hasTotal = true
		}
		return lp, true
	}
}

// matchSpringPage recognizes the Spring Data page convention:
// {content: [...], totalElements: N, number: 0-based page, size: N}.
func matchSpringPage(payload any) (*listPayload, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	raw, ok := arrayAt(m, "content")
	if !ok {
		return nil, false
	}
	lp := &listPayload{items: toPayloads(raw)}
	if total, ok := numberAt(m, "totalElements"); ok {
		lp.total = total
		lp.hasTotal = true
	} else {
		lp.total = int64(len(lp.items))
	}
	if number, ok := numberAt(m, "number"); ok {
		if size, ok := numberAt(m, "size"); ok && size > 0 {
			lp.page = int(number) + 1
			lp.pageSize = int(size)
			lp.hasPage = true
		}
	}
	return lp, true
}

// matchSuccessEnvelope recognizes {success: bool, data: <any known shape>}
// and re-runs the earlier matchers against the inner data.
func matchSuccessEnvelope(payload any) (*listPayload, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	if _, ok := m["success"].(bool); !ok {
		return nil, false
	}
	data, ok := m["data"]
	if !ok {
		return nil, false
	}
	for _, match := range listMatchers()[:6] {
		if lp, ok := match(data); ok {
			return lp, true
		}
	}
	return nil, false
}

// normalizeObject reduces a single-record response to a Payload, unwrapping
// the data/success envelopes when present.
func normalizeObject(endpoint string, payload any) (domain.Payload, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Payload: payload}
	}
	if _, hasSuccess := m["success"].(bool); hasSuccess {
		if inner, ok := m["data"].(map[string]any); ok {
			return domain.Payload(inner), nil
		}
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Payload: payload}
	}
	if inner, ok := m["data"].(map[string]any); ok {
		return domain.Payload(inner), nil
	}
	return domain.Payload(m), nil
}

// normalizeAck reduces a delete/restore response to a success flag. A 204
// (nil payload) counts as success.
func normalizeAck(payload any) bool {
	switch v := payload.(type) {
	case nil:
		return true
	case bool:
		return v
	case map[string]any:
		for _, key := range []string{"success", "deleted", "restored", "ok"} {
			if b, ok := v[key].(bool); ok {
				return b
			}
		}
		return true
	default:
		return true
	}
}

func arrayAt(m map[string]any, key string) ([]any, bool) {
	raw, ok := m[key].([]any)
	return raw, ok
}

func numberAt(m map[string]any, keys ...string) (int64, bool) {
	for _, k := range keys {
		switch n := m[k].(type) {
		case float64:
			return int64(n), true
		case int64:
			return n, true
		case int:
			return int64(n), true
		}
	}
	return 0, false
}

func toPayloads(raw []any) []domain.Payload {
	items := make([]domain.Payload, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			items = append(items, domain.Payload(m))
		}
	}
	return items
}

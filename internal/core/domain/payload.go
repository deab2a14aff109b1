// internal/core/domain/payload.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payload is a loosely-typed record as decoded from an API response. Entity
// constructors pull fields out of it with the coercion helpers below so that
// missing or mistyped values degrade to safe zero values instead of panics.
type Payload map[string]any

func (p Payload) str(keys ...string) string {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func (p Payload) id(keys ...string) int64 {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			switch n := v.(type) {
			case float64:
				return int64(n)
			case int64:
				return n
			case int:
				return int64(n)
			}
		}
	}
	return 0
}

func (p Payload) boolean(keys ...string) bool {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

func (p Payload) amount(keys ...string) decimal.Decimal {
	for _, k := range keys {
		v, ok := p[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return decimal.NewFromFloat(n)
		case string:
			if d, err := decimal.NewFromString(n); err == nil {
				return d
			}
		case int64:
			return decimal.NewFromInt(n)
		case int:
			return decimal.NewFromInt(int64(n))
		}
	}
	return decimal.Zero
}

// timestamp accepts RFC 3339 and plain dates, the two formats the upstream
// API has been observed to emit.
func (p Payload) timestamp(keys ...string) time.Time {
	for _, k := range keys {
		v, ok := p[k]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func (p Payload) records(keys ...string) []Payload {
	for _, k := range keys {
		v, ok := p[k]
		if !ok {
			continue
		}
		raw, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]Payload, 0, len(raw))
		for _, el := range raw {
			if m, ok := el.(map[string]any); ok {
				out = append(out, Payload(m))
			}
		}
		return out
	}
	return nil
}

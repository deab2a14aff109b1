// internal/core/domain/customer.go
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a single customer record with its owned debts.
type Customer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Debts     []Debt     `json:"debts"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CustomerFromPayload builds a Customer from a loosely-typed API record.
// It errors only when the payload itself is absent; missing fields fall back
// to zero values so that partial backend records never break list rendering.
func CustomerFromPayload(p Payload) (*Customer, error) {
	if p == nil {
		return nil, errors.New("customer payload is nil")
	}
	c := &Customer{
		ID:        p.id("id", "customer_id", "customerId"),
		Name:      p.str("name", "full_name", "fullName"),
		Email:     p.str("email"),
		Phone:     p.str("phone", "phone_number", "phoneNumber"),
		Address:   p.str("address"),
		Notes:     p.str("notes"),
		Debts:     debtsFromPayload(p, "debts", "deudas"),
		CreatedAt: p.timestamp("created_at", "createdAt"),
		UpdatedAt: p.timestamp("updated_at", "updatedAt"),
	}
	if t := p.timestamp("deleted_at", "deletedAt"); !t.IsZero() {
		c.DeletedAt = &t
	}
	if c.Debts == nil {
		c.Debts = []Debt{}
	}
	return c, nil
}

// IsValid reports whether the record satisfies the required-field and format
// checks enforced before a create/update call is issued.
func (c *Customer) IsValid() bool {
	if strings.TrimSpace(c.Name) == "" {
		return false
	}
	if !ValidEmail(c.Email) {
		return false
	}
	if c.Phone != "" && !ValidPhone(c.Phone) {
		return false
	}
	return true
}

// HasOutstandingDebt reports whether at least one debt is unsettled.
func (c *Customer) HasOutstandingDebt() bool { return hasOutstanding(c.Debts) }

// TotalDebt sums the amounts of all unsettled debts.
func (c *Customer) TotalDebt() decimal.Decimal { return outstandingTotal(c.Debts) }

// OverdueDebts returns the unsettled debts due strictly before now. The
// result is recomputed on every call, never cached.
func (c *Customer) OverdueDebts(now time.Time) []Debt { return overdueDebts(c.Debts, now) }

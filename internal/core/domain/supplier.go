// internal/core/domain/supplier.go
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Supplier represents a single supplier record with its owned debts.
type Supplier struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Company   string     `json:"company,omitempty"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Debts     []Debt     `json:"debts"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// SupplierFromPayload builds a Supplier from a loosely-typed API record.
// It errors only when the payload itself is absent.
func SupplierFromPayload(p Payload) (*Supplier, error) {
	if p == nil {
		return nil, errors.New("supplier payload is nil")
	}
	s := &Supplier{
		ID:        p.id("id", "supplier_id", "supplierId"),
		Name:      p.str("name", "full_name", "fullName"),
		Company:   p.str("company", "company_name", "companyName"),
		Email:     p.str("email"),
		Phone:     p.str("phone", "phone_number", "phoneNumber"),
		Address:   p.str("address"),
		Notes:     p.str("notes"),
		Debts:     debtsFromPayload(p, "debts", "deudas"),
		CreatedAt: p.timestamp("created_at", "createdAt"),
		UpdatedAt: p.timestamp("updated_at", "updatedAt"),
	}
	if t := p.timestamp("deleted_at", "deletedAt"); !t.IsZero() {
		s.DeletedAt = &t
	}
	if s.Debts == nil {
		s.Debts = []Debt{}
	}
	return s, nil
}

// IsValid reports whether the record satisfies the required-field and format
// checks enforced before a create/update call is issued.
func (s *Supplier) IsValid() bool {
	if strings.TrimSpace(s.Name) == "" {
		return false
	}
	if !ValidEmail(s.Email) {
		return false
	}
	if s.Phone != "" && !ValidPhone(s.Phone) {
		return false
	}
	return true
}

// HasOutstandingDebt reports whether at least one debt is unsettled.
func (s *Supplier) HasOutstandingDebt() bool { return hasOutstanding(s.Debts) }

// TotalDebt sums the amounts of all unsettled debts.
func (s *Supplier) TotalDebt() decimal.Decimal { return outstandingTotal(s.Debts) }

// OverdueDebts returns the unsettled debts due strictly before now.
func (s *Supplier) OverdueDebts(now time.Time) []Debt { return overdueDebts(s.Debts, now) }

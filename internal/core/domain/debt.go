// internal/core/domain/debt.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a sub-record owned by a Customer or Supplier. It has no independent
// lifecycle; the server destroys it together with its parent.
type Debt struct {
	ID             int64           `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	IsSettled      bool            `json:"is_settled"`
	AlertSent      bool            `json:"alert_sent"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
}

// DebtFromPayload builds a Debt from a loosely-typed record. Missing or
// mistyped fields fall back to zero values.
func DebtFromPayload(p Payload) Debt {
	if p == nil {
		return Debt{Amount: decimal.Zero}
	}
	return Debt{
		ID:             p.id("id", "debt_id"),
		Amount:         p.amount("amount", "monto"),
		DueDate:        p.timestamp("due_date", "dueDate"),
		IsSettled:      p.boolean("is_settled", "isSettled", "settled"),
		AlertSent:      p.boolean("alert_sent", "alertSent"),
		TransactionRef: p.str("transaction_ref", "transactionRef", "transaction_id"),
	}
}

// IsOverdue reports whether the debt is unsettled and due strictly before now.
func (d Debt) IsOverdue(now time.Time) bool {
	return !d.IsSettled && !d.DueDate.IsZero() && d.DueDate.Before(now)
}

func debtsFromPayload(p Payload, keys ...string) []Debt {
	records := p.records(keys...)
	debts := make([]Debt, 0, len(records))
	for _, r := range records {
		debts = append(debts, DebtFromPayload(r))
	}
	return debts
}

// outstandingTotal sums the amounts of all unsettled debts.
func outstandingTotal(debts []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if !d.IsSettled {
			total = total.Add(d.Amount)
		}
	}
	return total
}

func overdueDebts(debts []Debt, now time.Time) []Debt {
	var overdue []Debt
	for _, d := range debts {
		if d.IsOverdue(now) {
			overdue = append(overdue, d)
		}
	}
	return overdue
}

func hasOutstanding(debts []Debt) bool {
	for _, d := range debts {
		if !d.IsSettled {
			return true
		}
	}
	return false
}

package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

func TestCustomerFromPayload(t *testing.T) {
	tests := []struct {
		name      string
		payload   domain.Payload
		wantError bool
		check     func(t *testing.T, c *domain.Customer)
	}{
		{
			name:      "nil_payload",
			payload:   nil,
			wantError: true,
		},
		{
			name: "full_record_with_snake_case_keys",
			payload: domain.Payload{
				"id":         float64(42),
				"name":       "Maria Lopez",
				"email":      "maria@example.com",
				"phone":      "+1 555-0101",
				"address":    "12 Harbor St",
				"created_at": "2025-03-10T09:00:00Z",
				"debts": []any{
					map[string]any{"id": float64(7), "amount": 150.5, "due_date": "2025-06-01"},
				},
			},
			check: func(t *testing.T, c *domain.Customer) {
				assert.Equal(t, int64(42), c.ID)
				assert.Equal(t, "Maria Lopez", c.Name)
				assert.Equal(t, "maria@example.com", c.Email)
				require.Len(t, c.Debts, 1)
				assert.True(t, c.Debts[0].Amount.Equal(decimal.NewFromFloat(150.5)))
				assert.Equal(t, 2025, c.CreatedAt.Year())
			},
		},
		{
			name: "camel_case_key_aliases",
			payload: domain.Payload{
				"customerId":  float64(9),
				"fullName":    "Carlos Vega",
				"phoneNumber": "+1 555-0202",
				"createdAt":   "2025-03-12T14:30:00Z",
			},
			check: func(t *testing.T, c *domain.Customer) {
				assert.Equal(t, int64(9), c.ID)
				assert.Equal(t, "Carlos Vega", c.Name)
				assert.Equal(t, "+1 555-0202", c.Phone)
			},
		},
		{
			name:    "missing_fields_fall_back_to_zero_values",
			payload: domain.Payload{"name": "Bare"},
			check: func(t *testing.T, c *domain.Customer) {
				assert.Equal(t, int64(0), c.ID)
				assert.Empty(t, c.Email)
				assert.NotNil(t, c.Debts)
				assert.Empty(t, c.Debts)
				assert.True(t, c.CreatedAt.IsZero())
				assert.Nil(t, c.DeletedAt)
			},
		},
		{
			name: "mistyped_fields_do_not_panic",
			payload: domain.Payload{
				"id":    "not-a-number",
				"name":  float64(12),
				"debts": "not-an-array",
			},
			check: func(t *testing.T, c *domain.Customer) {
				assert.Equal(t, int64(0), c.ID)
				assert.Empty(t, c.Name)
				assert.Empty(t, c.Debts)
			},
		},
		{
			name: "deleted_at_sets_pointer",
			payload: domain.Payload{
				"name":       "Gone",
				"deleted_at": "2025-04-01T00:00:00Z",
			},
			check: func(t *testing.T, c *domain.Customer) {
				require.NotNil(t, c.DeletedAt)
				assert.Equal(t, time.April, c.DeletedAt.Month())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.CustomerFromPayload(tt.payload)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestCustomer_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		customer domain.Customer
		want     bool
	}{
		{
			name:     "valid_with_phone",
			customer: domain.Customer{Name: "Maria", Email: "maria@example.com", Phone: "+1 555-0101"},
			want:     true,
		},
		{
			name:     "valid_without_phone",
			customer: domain.Customer{Name: "Maria", Email: "maria@example.com"},
			want:     true,
		},
		{
			name:     "blank_name",
			customer: domain.Customer{Name: "   ", Email: "maria@example.com"},
			want:     false,
		},
		{
			name:     "malformed_email",
			customer: domain.Customer{Name: "Maria", Email: "maria@nodot"},
			want:     false,
		},
		{
			name:     "malformed_phone",
			customer: domain.Customer{Name: "Maria", Email: "maria@example.com", Phone: "abc"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.customer.IsValid())
		})
	}
}

func TestCustomer_DebtAggregates(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	customer := domain.Customer{
		Debts: []domain.Debt{
			{ID: 1, Amount: decimal.NewFromInt(100), DueDate: now.AddDate(0, 0, -10)},
			{ID: 2, Amount: decimal.NewFromInt(50), DueDate: now.AddDate(0, 0, 10)},
			{ID: 3, Amount: decimal.NewFromInt(75), DueDate: now.AddDate(0, 0, -5), IsSettled: true},
		},
	}

	assert.True(t, customer.HasOutstandingDebt())
	assert.True(t, customer.TotalDebt().Equal(decimal.NewFromInt(150)),
		"settled debts must be excluded from the total")

	overdue := customer.OverdueDebts(now)
	require.Len(t, overdue, 1, "settled and future debts are not overdue")
	assert.Equal(t, int64(1), overdue[0].ID)

	settled := domain.Customer{Debts: []domain.Debt{{Amount: decimal.NewFromInt(10), IsSettled: true}}}
	assert.False(t, settled.HasOutstandingDebt())
	assert.True(t, settled.TotalDebt().IsZero())
}

func TestDebt_IsOverdue(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.Debt{DueDate: now.AddDate(0, 0, -1)}.IsOverdue(now))
	assert.False(t, domain.Debt{DueDate: now.AddDate(0, 0, 1)}.IsOverdue(now))
	assert.False(t, domain.Debt{DueDate: now.AddDate(0, 0, -1), IsSettled: true}.IsOverdue(now))
	assert.False(t, domain.Debt{}.IsOverdue(now), "a debt with no due date is never overdue")
}

func TestDebtFromPayload_AmountCoercion(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.Payload
		want    decimal.Decimal
	}{
		{name: "float_amount", payload: domain.Payload{"amount": 99.95}, want: decimal.NewFromFloat(99.95)},
		{name: "string_amount", payload: domain.Payload{"amount": "42.10"}, want: decimal.RequireFromString("42.10")},
		{name: "alias_key", payload: domain.Payload{"monto": 10.0}, want: decimal.NewFromInt(10)},
		{name: "missing_amount", payload: domain.Payload{}, want: decimal.Zero},
		{name: "unparseable_string", payload: domain.Payload{"amount": "lots"}, want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debt := domain.DebtFromPayload(tt.payload)
			assert.True(t, debt.Amount.Equal(tt.want), "want %s got %s", tt.want, debt.Amount)
		})
	}
}

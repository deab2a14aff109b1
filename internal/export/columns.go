// internal/export/columns.go
package export

import (
	"strconv"
	"time"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

// Stock column sets for the three dashboard screens. The debt columns are
// derived at export time so the file reflects the same numbers the table
// showed.

// CustomerColumns returns the default customer export mapping.
func CustomerColumns(now func() time.Time) []Column[domain.Customer] {
	return []Column[domain.Customer]{
		{Header: "ID", Value: func(c domain.Customer) string { return strconv.FormatInt(c.ID, 10) }},
		{Header: "Name", Value: func(c domain.Customer) string { return c.Name }},
		{Header: "Email", Value: func(c domain.Customer) string { return c.Email }},
		{Header: "Phone", Value: func(c domain.Customer) string { return c.Phone }},
		{Header: "Address", Value: func(c domain.Customer) string { return c.Address }},
		{Header: "Outstanding Debt", Value: func(c domain.Customer) string { return c.TotalDebt().StringFixed(2) }},
		{Header: "Overdue Debts", Value: func(c domain.Customer) string {
			return strconv.Itoa(len(c.OverdueDebts(now())))
		}},
		{Header: "Created At", Value: func(c domain.Customer) string { return formatDate(c.CreatedAt) }},
	}
}

// SupplierColumns returns the default supplier export mapping.
func SupplierColumns(now func() time.Time) []Column[domain.Supplier] {
	return []Column[domain.Supplier]{
		{Header: "ID", Value: func(s domain.Supplier) string { return strconv.FormatInt(s.ID, 10) }},
		{Header: "Name", Value: func(s domain.Supplier) string { return s.Name }},
		{Header: "Company", Value: func(s domain.Supplier) string { return s.Company }},
		{Header: "Email", Value: func(s domain.Supplier) string { return s.Email }},
		{Header: "Phone", Value: func(s domain.Supplier) string { return s.Phone }},
		{Header: "Outstanding Debt", Value: func(s domain.Supplier) string { return s.TotalDebt().StringFixed(2) }},
		{Header: "Overdue Debts", Value: func(s domain.Supplier) string {
			return strconv.Itoa(len(s.OverdueDebts(now())))
		}},
		{Header: "Created At", Value: func(s domain.Supplier) string { return formatDate(s.CreatedAt) }},
	}
}

// UserColumns returns the default user export mapping.
func UserColumns() []Column[domain.User] {
	return []Column[domain.User]{
		{Header: "ID", Value: func(u domain.User) string { return strconv.FormatInt(u.ID, 10) }},
		{Header: "Name", Value: func(u domain.User) string { return u.Name }},
		{Header: "Email", Value: func(u domain.User) string { return u.Email }},
		{Header: "Role", Value: func(u domain.User) string { return string(u.Role) }},
		{Header: "Active", Value: func(u domain.User) string {
			if u.Active {
				return "Yes"
			}
			return "No"
		}},
		{Header: "Created At", Value: func(u domain.User) string { return formatDate(u.CreatedAt) }},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// internal/export/csv_test.go
package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/export"
	"github.com/haroldmz/stockdesk/test/helpers"
)

func TestWriteCSV_QuotesEveryField(t *testing.T) {
	columns := []export.Column[[2]string]{
		{Header: "First", Value: func(r [2]string) string { return r[0] }},
		{Header: "Second", Value: func(r [2]string) string { return r[1] }},
	}
	rows := [][2]string{
		{"plain", "also plain"},
		{"with, comma", "with \"quotes\""},
		{"with\nnewline", ""},
	}

	var sb strings.Builder
	require.NoError(t, export.WriteCSV(&sb, columns, rows))

	lines := strings.Split(sb.String(), "\r\n")
	require.Len(t, lines, 5, "header + three records + trailing terminator")
	assert.Equal(t, `"First","Second"`, lines[0])
	assert.Equal(t, `"plain","also plain"`, lines[1])
	assert.Equal(t, `"with, comma","with ""quotes"""`, lines[2])
	assert.Equal(t, "\"with\nnewline\",\"\"", lines[3])
	assert.Empty(t, lines[4])
}

func TestWriteCSV_RequiresColumns(t *testing.T) {
	err := export.WriteCSV(&strings.Builder{}, nil, []string{"row"})
	assert.Error(t, err)
}

func TestWriteCSV_EmptyRowsStillWritesHeader(t *testing.T) {
	columns := []export.Column[string]{
		{Header: "Name", Value: func(s string) string { return s }},
	}

	var sb strings.Builder
	require.NoError(t, export.WriteCSV(&sb, columns, nil))
	assert.Equal(t, "\"Name\"\r\n", sb.String())
}

func TestCustomerColumns(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }
	customer := *helpers.CreateTestCustomer(func(c *domain.Customer) {
		c.Debts = []domain.Debt{
			{Amount: decimal.NewFromFloat(100.50), DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{Amount: decimal.NewFromInt(25), DueDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
			{Amount: decimal.NewFromInt(40), IsSettled: true},
		}
	})

	columns := export.CustomerColumns(now)
	byHeader := map[string]string{}
	for _, col := range columns {
		byHeader[col.Header] = col.Value(customer)
	}

	assert.Equal(t, "1", byHeader["ID"])
	assert.Equal(t, "Maria Lopez", byHeader["Name"])
	assert.Equal(t, "125.50", byHeader["Outstanding Debt"], "settled debts are excluded")
	assert.Equal(t, "1", byHeader["Overdue Debts"], "only unsettled debts past due count")
	assert.Equal(t, "2025-03-10 09:00:00", byHeader["Created At"])
}

func TestUserColumns(t *testing.T) {
	user := *helpers.CreateTestUser(func(u *domain.User) { u.Active = false })

	columns := export.UserColumns()
	byHeader := map[string]string{}
	for _, col := range columns {
		byHeader[col.Header] = col.Value(user)
	}

	assert.Equal(t, "staff", byHeader["Role"])
	assert.Equal(t, "No", byHeader["Active"])
}

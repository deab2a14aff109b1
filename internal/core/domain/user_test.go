package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

func TestUserFromPayload(t *testing.T) {
	tests := []struct {
		name      string
		payload   domain.Payload
		wantError bool
		wantRole  domain.Role
	}{
		{
			name:     "admin_role_preserved",
			payload:  domain.Payload{"id": float64(1), "name": "Ana", "role": "admin"},
			wantRole: domain.RoleAdmin,
		},
		{
			name:     "staff_role_preserved",
			payload:  domain.Payload{"id": float64(2), "name": "Ben", "role": "staff"},
			wantRole: domain.RoleStaff,
		},
		{
			name:     "unknown_role_falls_back_to_staff",
			payload:  domain.Payload{"id": float64(3), "name": "Eve", "role": "superuser"},
			wantRole: domain.RoleStaff,
		},
		{
			name:     "missing_role_falls_back_to_staff",
			payload:  domain.Payload{"id": float64(4), "name": "Dan"},
			wantRole: domain.RoleStaff,
		},
		{
			name:      "nil_payload",
			payload:   nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := domain.UserFromPayload(tt.payload)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, u.Role)
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&domain.User{Role: domain.RoleAdmin}).IsAdmin())
	assert.False(t, (&domain.User{Role: domain.RoleStaff}).IsAdmin())

	var nobody *domain.User
	assert.False(t, nobody.IsAdmin(), "a nil user is never an admin")
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"maria.lopez@example.com",
		"user+tag@sub.domain.org",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@nodot",
		"user@.com",
		"user@domain.c",
	}

	for _, s := range valid {
		assert.True(t, domain.ValidEmail(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, domain.ValidEmail(s), "expected %q to be invalid", s)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+1 555-0101",
		"5550101234",
		"02 9999 8888",
	}
	invalid := []string{
		"",
		"abc",
		"12345",
		"+",
	}

	for _, s := range valid {
		assert.True(t, domain.ValidPhone(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, domain.ValidPhone(s), "expected %q to be invalid", s)
	}
}

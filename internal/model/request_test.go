package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLeaveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want string
	}{
		{"single day", day(1), day(1), "1"},
		{"inclusive range", day(1), day(5), "5"},
		{"half day", day(1), day(1).Add(12 * time.Hour), "1.5"},
		{"reversed range", day(5), day(1), "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.want)
			assert.NoError(t, err)
			assert.True(t, LeaveDays(tc.from, tc.to).Equal(want))
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleEmployee, RoleManager, RoleAdmin, RoleSuperAdmin} {
		assert.True(t, IsValidRole(role))
	}
	for _, role := range []string{"", "root", "Employee", "superadmin"} {
		assert.False(t, IsValidRole(role))
	}
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole(RoleAdmin))
	assert.True(t, IsAdminRole(RoleSuperAdmin))
	assert.False(t, IsAdminRole(RoleManager))
	assert.False(t, IsAdminRole(RoleEmployee))
}

func TestIsValidDocumentCategory(t *testing.T) {
	assert.True(t, IsValidDocumentCategory("identity"))
	assert.True(t, IsValidDocumentCategory("other"))
	assert.False(t, IsValidDocumentCategory("passport"))
	assert.False(t, IsValidDocumentCategory(""))
}

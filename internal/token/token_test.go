package token

import (
	"testing"
	"time"

	"hrms-backend/internal/config"
	"hrms-backend/internal/model"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		Issuer:     "hrms-app",
		Audience:   "hrms-users",
	}
}

func testUser() *model.User {
	return &model.User{
		ID:             uuid.New(),
		Email:          "jdoe@example.com",
		Username:       "jdoe1234",
		Role:           model.RoleEmployee,
		EmployeeName:   "John Doe",
		EmployeeNumber: "1234",
	}
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	svc := NewService(testConfig())
	user := testUser()

	tokenString, err := svc.IssueAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, KindAccess, claims.Kind)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.EmployeeName, claims.EmployeeName)
	assert.Equal(t, user.EmployeeNumber, claims.EmployeeNumber)
}

func TestIssueTokenPair(t *testing.T) {
	svc := NewService(testConfig())
	user := testUser()

	pair, err := svc.IssueTokenPair(user)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := svc.Verify(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, KindAccess, access.Kind)

	refresh, err := svc.Verify(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, KindRefresh, refresh.Kind)
	// Refresh tokens carry no display claims
	assert.Empty(t, refresh.Email)
	assert.Empty(t, refresh.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTTL = -time.Minute
	svc := NewService(cfg)

	tokenString, err := svc.IssueAccessToken(testUser())
	assert.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := NewService(testConfig())
	tokenString, err := svc.IssueAccessToken(testUser())
	assert.NoError(t, err)

	other := testConfig()
	other.Secret = "a-different-secret"
	_, err = NewService(other).Verify(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Issuer = "some-other-app"
	issued, err := NewService(cfg).IssueAccessToken(testUser())
	assert.NoError(t, err)

	_, err = NewService(testConfig()).Verify(issued)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService(testConfig())
	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"empty header", "", ""},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc.def.ghi", ""},
		{"lowercase scheme", "bearer abc.def.ghi", ""},
		{"extra parts", "Bearer abc def", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractBearer(tc.header))
		})
	}
}

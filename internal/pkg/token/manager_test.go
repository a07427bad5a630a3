package token_test

import (
	"testing"
	"time"

	"storefront/internal/pkg/token"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestNewManager_PanicsOnEmptySecret(t *testing.T) {
	assert.Panics(t, func() { token.NewManager("", time.Hour) })
	assert.Panics(t, func() { token.NewManager("   ", time.Hour) })
}

func TestManager_IssueAndParse_RoundTrip(t *testing.T) {
	manager := token.NewManager(testSecret, time.Hour)

	signed, issued, err := manager.IssueAdminToken("admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.Equal(t, token.RoleAdmin, issued.Role)
	assert.NotEmpty(t, issued.ID)

	claims, err := manager.ParseAndValidate(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, token.RoleAdmin, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestManager_ParseAndValidate_EmptyToken(t *testing.T) {
	manager := token.NewManager(testSecret, time.Hour)

	_, err := manager.ParseAndValidate("")

	require.ErrorIs(t, err, token.ErrEmptyToken)
}

func TestManager_ParseAndValidate_WrongSecret(t *testing.T) {
	manager := token.NewManager(testSecret, time.Hour)
	other := token.NewManager("a-different-secret", time.Hour)

	signed, _, err := other.IssueAdminToken("admin-1")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(signed)
	require.Error(t, err)
}

func TestManager_ParseAndValidate_ExpiredToken(t *testing.T) {
	manager := token.NewManager(testSecret, -time.Minute)

	signed, _, err := manager.IssueAdminToken("admin-1")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(signed)
	require.ErrorIs(t, err, jwtlib.ErrTokenExpired)
}

func TestManager_ParseAndValidate_RejectsNonAdminRole(t *testing.T) {
	manager := token.NewManager(testSecret, time.Hour)

	claims := &token.Claims{
		Role: "viewer",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(signed)
	require.ErrorIs(t, err, token.ErrRoleForbidden)
}

func TestManager_ParseAndValidate_RejectsUnsignedToken(t *testing.T) {
	manager := token.NewManager(testSecret, time.Hour)

	claims := token.NewAdminClaims("admin-1", time.Hour)
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(unsigned)
	require.Error(t, err)
}

// Package token handles admin JWT creation and validation. The HTTP adapter
// uses it to gate every /api/admin route behind a valid administrative
// credential.
package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleAdmin is the only role accepted by the admin gate.
const RoleAdmin = "admin"

// Claims is the canonical JWT claims payload for administrative tokens.
type Claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// NewAdminClaims builds claims for an administrator token with the given
// subject and time-to-live.
func NewAdminClaims(adminID string, ttl time.Duration) *Claims {
	now := time.Now()

	return &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
}

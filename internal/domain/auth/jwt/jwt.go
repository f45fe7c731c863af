package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens handed out at
// signup/signin. Tokens are self-contained; expiry is the only
// invalidation mechanism, there is no server-side revocation.
type TokenService interface {
	Generate(userID uuid.UUID) (token string, exp time.Time, err error)
	Validate(token string) (Claims, error)
}

package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	jwt2 "github.com/yaskovbs/My-Second-Project/internal/domain/auth/jwt"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
	"github.com/yaskovbs/My-Second-Project/internal/infra/config"
)

type TokenServiceImpl struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

// NewTokenService builds an HS256 token service around the process-wide
// signing secret. The secret is loaded once at startup and never rotated.
func NewTokenService(cfg *config.Config) (*TokenServiceImpl, error) {
	if cfg.JWTSecret == "" {
		return nil, customErrors.NewInvalidArgument("jwt secret is empty")
	}
	return &TokenServiceImpl{
		secret:   []byte(cfg.JWTSecret),
		ttl:      cfg.TokenTTL,
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}, nil
}

func (t *TokenServiceImpl) Generate(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()

	claims := jwt2.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, customErrors.WrapInternal(err, "sign token")
	}

	return signed, claims.ExpiresAt.Time, nil
}

func (t *TokenServiceImpl) Validate(raw string) (jwt2.Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt2.Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithIssuedAt())

	if err != nil || !token.Valid {
		return jwt2.Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt2.Claims)
	if !ok {
		return jwt2.Claims{}, customErrors.ErrInvalidToken
	}

	if t.issuer != "" && claims.Issuer != t.issuer {
		return jwt2.Claims{}, customErrors.ErrInvalidToken
	}

	if t.audience != "" {
		okAudi := false
		for _, a := range claims.Audience {
			if a == t.audience {
				okAudi = true
				break
			}
		}
		if !okAudi {
			return jwt2.Claims{}, customErrors.ErrInvalidToken
		}
	}

	return *claims, nil
}

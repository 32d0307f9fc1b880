package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wordrush/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey []byte
	tokenAge  time.Duration
}

func NewJWTManager(secretKey string, tokenAge time.Duration) *JWTManager {
	return &JWTManager{secretKey: []byte(secretKey), tokenAge: tokenAge}
}

func (m *JWTManager) Generate(userId string, now time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify returns the user id carried by a valid token. Failures map to
// domain sentinels so callers can distinguish expiry from tampering.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidSigningAlg
		}
		return m.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSigningAlg):
			return "", domain.ErrInvalidSigningAlg
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrInvalidTokenSignature
		default:
			return "", domain.ErrCorruptedToken
		}
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", domain.ErrCorruptedToken
	}

	return claims.Subject, nil
}

package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-garment-supply/internal/apperr"
)

const tokenLifetime = 15 * 24 * time.Hour

// Claims carried by every issued token. Verification has no side effect:
// there is no revocation list and no refresh.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies identity tokens with a process-wide secret,
// handed in once at startup.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates an HS256 token embedding the user id, valid for 15 days.
func (m *Manager) Issue(userID uint) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", apperr.ErrTokenCreation
	}
	return signed, nil
}

// Verify parses the token and returns the embedded user id. Expiry is
// reported distinctly from structural or signature failures so clients know
// when a re-login would help.
func (m *Manager) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperr.ErrExpiredToken
		}
		return 0, apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}

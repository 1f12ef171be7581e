package helpers

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type AuthClaims struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (ac *AuthClaims) UserID() string {
	return ac.Subject
}

func (ac *AuthClaims) IsAdmin() bool {
	return ac.Role == "admin"
}

func (ac *AuthClaims) IsOwner(userID string) bool {
	return ac.Subject == userID
}

// ValidateToken verifies an HS256 bearer token and returns its claims.
func ValidateToken(tokenStr, secret string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

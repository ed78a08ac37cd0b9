package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	CustomerID uint `json:"customerId"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 JWT for a customer.
func GenerateToken(customerID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

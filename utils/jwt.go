package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "RestaurantPOS"

var ErrInvalidToken = errors.New("invalid or expired token")

// OperatorClaims membawa identitas operator kasir yang sedang memegang perangkat.
type OperatorClaims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, operator string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &OperatorClaims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

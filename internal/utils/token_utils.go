package utils

import (
	"errors"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

// SignJWT signs the claim set with HS256.
func SignJWT(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseAndValidateJWT parses tokenString into claims, checking signature, expiry and issuer.
// Expired tokens yield apperrors.ErrTokenExpired; every other failure yields apperrors.ErrInvalidSignature.
func ParseAndValidateJWT(tokenString, secretKey, issuer string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %v", apperrors.ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSignature, err)
	}
	if !token.Valid {
		return apperrors.ErrInvalidSignature
	}
	return nil
}

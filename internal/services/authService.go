package services

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayvista/stayvista-server/internal/httperr"
)

// Session tokens live for a year; the client keeps the cookie and the
// server holds no revocation state.
const tokenValidity = 365 * 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
}

// IssueToken signs a session token carrying the user's email.
func IssueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the email claim.
// Missing, malformed and expired tokens all fail the same way.
func VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", httperr.ErrUnauthenticated
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", httperr.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", httperr.ErrUnauthenticated
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", httperr.ErrUnauthenticated
	}
	return email, nil
}

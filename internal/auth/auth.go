// Package auth verifies the caller's bearer identity token. Tokens are
// HS256 JWTs issued by the identity provider; only the subject claim is
// consumed here.
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the request-locals key holding the authenticated user id.
const UserIDKey = "userID"

var (
	errMissingToken = errors.New("Authentication required. Please sign in to use this feature.")
	errInvalidToken = errors.New("Invalid or expired session. Please sign in again.")
)

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates a token string and returns the subject.
func (v *Verifier) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errInvalidToken
	}
	return sub, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// authenticated user id in request locals.
func (v *Verifier) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(401).JSON(fiber.Map{"error": errMissingToken.Error()})
		}

		userID, err := v.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

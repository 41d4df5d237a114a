package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/partymatcher/party-matchmaker-backend/config"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Email  string
}

// Auth handles JWT authentication and aborts unauthenticated requests.
// Handlers behind it can rely on "user_id" being set in the gin context.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := identityFromHeader(c.GetHeader("Authorization"), cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("user_email", identity.Email)
		c.Next()
	}
}

// OptionalAuth never rejects a request. A valid token sets the caller
// identity; a missing or invalid one leaves the request anonymous. Used
// for event creation, where anonymous hosts are allowed.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := identityFromHeader(c.GetHeader("Authorization"), cfg.JWTSecret); err == nil {
			c.Set("user_id", identity.UserID)
			c.Set("user_email", identity.Email)
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id, or "" for anonymous callers.
func CallerID(c *gin.Context) string {
	if id, ok := c.Get("user_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func identityFromHeader(authHeader, secret string) (Identity, error) {
	if authHeader == "" {
		return Identity{}, errMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Identity{}, errInvalidHeader
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, errInvalidToken
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: sub, Email: email}, nil
}

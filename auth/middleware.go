package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/models"
)

const (
	// AuthClaimsKey is the key used to store JWT claims in gin context
	AuthClaimsKey = "auth_claims"
)

// AuthMiddleware creates a middleware for JWT authentication. The token must
// be valid and its session still live.
func AuthMiddleware(jwtService *JWTService, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
				http.StatusUnauthorized, "Authorization header required", ""))
			c.Abort()
			return
		}

		// Check Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
				http.StatusUnauthorized, "Invalid authorization header format", ""))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
				http.StatusUnauthorized, "Invalid or expired token", err.Error()))
			c.Abort()
			return
		}

		if _, ok := sessions.Get(claims.SessionID); !ok {
			c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
				http.StatusUnauthorized, "Session expired, please log in again", ""))
			c.Abort()
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token with a live
// session is present and lets the request through either way
func OptionalAuthMiddleware(jwtService *JWTService, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}
		if _, ok := sessions.Get(claims.SessionID); !ok {
			c.Next()
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

// IsAuthenticated checks if user is authenticated
func IsAuthenticated(c *gin.Context) bool {
	return GetAuthClaims(c) != nil
}

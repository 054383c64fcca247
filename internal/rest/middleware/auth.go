package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// userIDFromToken parses the Bearer token and returns the user_id claim.
func userIDFromToken(c *gin.Context, secret string) (int64, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int64(uid), true
}

// AuthMiddleware rejects requests without a valid token and exposes the
// caller's user_id to the handlers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userIDFromToken(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
			return
		}
		c.Set("user_id", uid)
		c.Next()
	}
}

// OptionalAuthMiddleware exposes user_id when a valid token is present but
// lets anonymous requests through. Used on read surfaces where the viewer
// identity only enriches the response.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := userIDFromToken(c, secret); ok {
			c.Set("user_id", uid)
		}
		c.Next()
	}
}

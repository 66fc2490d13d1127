package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claims structure issued to mobile clients. The user ID
// travels in the registered subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token on each request and stores the
// authenticated user's ID in the gin context under UserIDKey.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization required",
			})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := validateJWT(token, jwtSecret)
		if err != nil {
			log.Warnw("Invalid JWT token",
				"error", err,
				"path", c.Request.URL.Path,
				"ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// validateJWT parses and verifies an HS256 token and returns its subject.
func validateJWT(tokenString, secret string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// GetUserID returns the authenticated user's ID from the gin context, or ""
// when the request did not pass AuthMiddleware.
func GetUserID(c *gin.Context) string {
	return c.GetString(string(UserIDKey))
}

package middleware

import (
	"net/http"
	"strings"

	"poster-board/pkg/auth"
	"poster-board/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the actor both on the
// gin context ("user_id", "user_role") and on the request context.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		actor := auth.Actor{UserID: claims.UserID, Role: claims.Role}
		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))

		c.Next()
	}
}

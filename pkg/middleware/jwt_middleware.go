package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wellspring/pkg/utils"
)

// JWTAuthMiddleware is the session provider boundary: it validates bearer
// tokens issued elsewhere and exposes the session identity as "user_id".
// It never mints or refreshes tokens.
func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

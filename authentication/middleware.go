package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-connect/models"
)

// Context keys set by RequireRole for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// RequireRole rejects requests whose token is missing, invalid, or carries a
// different role than the one guarding the route group.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing the authorization header"})
			return
		}

		authHeader := strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))
		claims, err := ParseToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		switch claims.Role {
		case models.RolePatient, models.RoleDoctor, models.RoleAdmin:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no valid role assigned"})
			return
		}

		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

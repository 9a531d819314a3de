package middleware

import (
	"net/http"

	"lumea/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// JWTAuthMiddleware, which sets the role on the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// AdminOnly restricts a route group to admin accounts.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// StaffOrAdmin restricts a route group to the team and admin surfaces.
func StaffOrAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleStaff, models.RoleAdmin)
}

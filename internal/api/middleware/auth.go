package middleware

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/gin-gonic/gin"
)

func requireRole(check func(roles []string) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !check(claims.Roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

// Admin gates roster mutation and status transitions.
func Admin() gin.HandlerFunc {
	return requireRole(func(roles []string) bool {
		return user.HasRole(roles, user.RoleAdmin)
	}, "admin only")
}

// Staff gates review-queue style reads (admins and professors).
func Staff() gin.HandlerFunc {
	return requireRole(func(roles []string) bool {
		return user.HasRole(roles, user.RoleAdmin) || user.HasRole(roles, user.RoleProfessor)
	}, "staff only")
}

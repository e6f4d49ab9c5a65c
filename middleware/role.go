package middleware

import (
	"net/http"

	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// RoleHeader declares which marketplace role the caller is acting as.
// There is no authentication in this demo: the landing page's role picker
// becomes a plain request header.
const RoleHeader = "X-User-Role"

// RoleRequired enforces that the caller declared one of the allowed roles.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := models.UserRole(c.GetHeader(RoleHeader))
		if callerRole == "" {
			callerRole = models.RoleCustomer
		}
		for _, r := range roles {
			if callerRole == r {
				c.Set("role", string(callerRole))
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetRole extracts the declared caller role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	role, _ := val.(string)
	return models.UserRole(role)
}

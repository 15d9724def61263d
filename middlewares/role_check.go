package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/yeremiapane/restaurant-api/utils"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// RoleCheck lets the request through when the authenticated role is one of
// allowed. Admin is always allowed.
func RoleCheck(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextRole)
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if role != RoleAdmin && !lo.Contains(allowed, role) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", strings.Join(allowed, " or ")))
			c.Abort()
			return
		}

		c.Next()
	}
}

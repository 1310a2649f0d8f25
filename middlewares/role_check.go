package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

// RequireAdmin allows only admin users past; staff and everyone else get 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/castellodata/payroll_backend/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a Bearer JWT as an alternative to the redis
// session token, for service-to-service callers that have no login flow.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		auth = strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		// History rows require a user name; fall back to a service
		// identifier when the claim carries none.
		userName := claim.Name
		if userName == "" {
			userName = fmt.Sprintf("service:%d", claim.ID)
		}

		ctx := utils.SetUserIdInContext(c.Request.Context(), claim.ID)
		ctx = utils.SetUserNameInContext(ctx, userName)
		ctx = utils.SetUserRoleInContext(ctx, claim.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

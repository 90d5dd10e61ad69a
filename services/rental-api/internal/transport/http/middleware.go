package httpx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/pkg/auth"
)

// JWTAuth guards the booking and payment routes. Claims land on the gin
// context under "sub", "role" and "email".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Err("Authentication required"))
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")
		claims, err := auth.ParseValidate(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Err("Invalid or expired token"))
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, _ := c.Get("role")
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, api.Err("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

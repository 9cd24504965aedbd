package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-admin/utils"
)

// TokenChecker validates bearer tokens issued at login.
type TokenChecker interface {
	Valid(token string) bool
}

// RequireAuth guards the API group: requests must carry a bearer token that
// is still live.
func RequireAuth(checker TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || !checker.Valid(token) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}
		c.Next()
	}
}

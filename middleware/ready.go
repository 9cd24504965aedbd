package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/store"
	"hotel-admin/utils"
)

// RequireStore blocks the data routes while the Store has never loaded or is
// sitting in the load-error state. The retained error message is surfaced so
// the screens can offer a retry against /api/state/reload.
func RequireStore(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st.Ready() {
			c.Next()
			return
		}
		msg := "initial data load has not completed"
		if err := st.Err(); err != nil {
			msg = err.Error()
		}
		utils.JSONError(c, http.StatusServiceUnavailable, msg)
		c.Abort()
	}
}

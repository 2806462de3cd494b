package middlewares

import (
	"net/http"

	"github.com/DivaythFyr2/fittrack/constants"

	"github.com/gin-gonic/gin"
)

// Recovery turns any panic in a handler into a 500 with the fixed generic
// body, so internals never leak to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.String(http.StatusInternalServerError, constants.InternalServerError)
	})
}

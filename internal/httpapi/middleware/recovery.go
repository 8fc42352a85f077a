package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
)

// Recovery turns a panic into the JSON error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					"request_id", c.GetString(RequestIDKey),
					"path", c.Request.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				common.AbortFail(c, http.StatusInternalServerError, 50000, "internal server error")
			}
		}()
		c.Next()
	}
}

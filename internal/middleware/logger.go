package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request, turns panics into JSON 500s, and records
// handler errors with enough context to chase them down.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				zap.S().Errorw("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"panic", fmt.Sprintf("%v", recovered),
					"stack", string(debug.Stack()),
				)
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				c.Abort()
				return
			}

			fields := []any{
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"client_ip", c.ClientIP(),
				"latency", time.Since(start),
			}
			for _, err := range c.Errors {
				fields = append(fields, "error", err.Error())
			}

			switch {
			case c.Writer.Status() >= http.StatusInternalServerError:
				zap.S().Errorw("request failed", fields...)
			case len(c.Errors) > 0:
				zap.S().Warnw("request completed with errors", fields...)
			default:
				zap.S().Debugw("request", fields...)
			}
		}()

		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags every request with an identifier and puts a request-scoped
// logger on the context. Incoming X-Request-ID headers are honored so
// upstream platforms can correlate their own traces.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set("logger", logger.With(zap.String("request_id", id)))
		c.Next()
	}
}

// RequestLogger pulls the request-scoped logger off the context, falling
// back to the provided one when middleware has not run.
func RequestLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if value, exists := c.Get("logger"); exists {
		if logger, ok := value.(*zap.Logger); ok {
			return logger
		}
	}
	return fallback
}

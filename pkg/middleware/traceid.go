package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderTraceID = "X-Trace-ID"

// TraceIDMiddleware reuses a caller-supplied X-Trace-ID when it is a UUID and
// mints a new one otherwise.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		if raw := c.GetHeader(HeaderTraceID); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				traceID = id.String()
			}
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(HeaderTraceID, traceID)
		c.Next()
	}
}

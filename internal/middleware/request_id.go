package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "movie-search-bot/pkg/log"
)

// RequestIDHeader carries the request ID back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a UUID, exposes it in the response header
// and threads it through the request context so log entries correlate one
// webhook delivery end to end (update IDs repeat on redelivery, request IDs
// do not).
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pkgLog.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

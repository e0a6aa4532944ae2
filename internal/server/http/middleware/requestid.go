package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"

	requestIDHeader = "X-Request-Id"
)

// RequestID tags every request with an identifier, reusing one supplied
// by the client when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

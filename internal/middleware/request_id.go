package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/marketplace-api/internal/constants"
)

// RequestID tags each request with an id, reusing the client's X-Request-ID
// when one is sent
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Store request ID in context for easy access in handlers
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the current request ID from context
func GetRequestID(c *gin.Context) string {
	requestID, exists := c.Get(constants.ContextKeyRequestID)
	if !exists {
		return ""
	}

	id, _ := requestID.(string)
	return id
}

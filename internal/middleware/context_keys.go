package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request ID in the Gin context.
// Using a custom type prevents collisions.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(requestIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	if !ok {
		// This should not happen if the logging middleware sets it correctly.
		return "", false
	}

	return requestID, true
}

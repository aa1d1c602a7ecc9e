package middleware

import "github.com/gin-gonic/gin"

// callerKey is the key used to store the authenticated calling module's name
// in the context. Using a custom type prevents collisions.
const callerKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller (the suite module
// that holds the service token) from the Gin context. It returns the caller
// and a boolean indicating if it was found.
func GetCallerFromContext(c *gin.Context) (string, bool) {
	callerVal, exists := c.Get(string(callerKey))
	if !exists {
		// check the request context as well
		v := c.Request.Context().Value(callerKey)
		if v != nil {
			return v.(string), true
		}
		return "", false
	}

	caller, ok := callerVal.(string)
	if !ok {
		return "", false
	}

	return caller, true
}

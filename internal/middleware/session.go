package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the cart session for a request. Clients send
// the session ID back in the X-Session-ID header; a request without one
// gets a fresh ID. The ID is echoed on every response so the client can
// pick it up after the first call.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the anonymous cart session id.
const SessionCookie = "cart_session"

const sessionMaxAge = 30 * 24 * time.Hour

// CartSession ensures every request carries a cart session cookie and exposes
// the id on the request context under "session_id". The cart persisted for
// that id belongs to exactly one browser profile.
func CartSession(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(SessionCookie, sessionID, int(sessionMaxAge.Seconds()), "/", "", false, true)
	}
	c.Set("session_id", sessionID)
	c.Next()
}

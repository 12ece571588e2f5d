package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/session"
)

const sessionCookie = "carmitra_session"

// bundleKey is where the session bundle lands in the gin context.
const bundleKey = "sessionBundle"

// Session attaches the caller's session bundle to the request context,
// minting a cookie on first visit. State is in-memory only; a restart
// starts everyone fresh.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = manager.NewID()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(bundleKey, manager.Bundle(id))
		c.Next()
	}
}

// Bundle retrieves the session bundle installed by Session.
func Bundle(c *gin.Context) *session.Bundle {
	return c.MustGet(bundleKey).(*session.Bundle)
}

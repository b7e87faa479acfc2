package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	sessionCtxKey = "cartSessionID"
	cookieMaxAge  = 60 * 60 * 24 * 30
)

// sessionMiddleware guarantees every cart request carries a session id,
// issuing a cookie on first contact. One session id means one cart store.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

// snapshotKey is the well-known storage key for a session's cart snapshot.
func snapshotKey(c *gin.Context) string {
	return "shopping-cart:" + c.GetString(sessionCtxKey)
}

package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// Session is the authenticated principal for one request. It is built by the
// Auth middleware and passed explicitly through the handler layer; nothing
// reads identity from ambient global state.
type Session struct {
	UserID string
	Email  string
}

const sessionKey = "session"

// Auth trusts the identity headers set by the gateway in front of this
// service. Requests without a user id are rejected.
func Auth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		c.Set(sessionKey, Session{
			UserID: userID,
			Email:  c.GetHeader("X-User-Email"),
		})

		c.Next()
	}
}

// CurrentSession returns the principal the Auth middleware stored.
func CurrentSession(c *ginext.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}

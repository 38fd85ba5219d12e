package middleware

import (
	"poemhub/internal/webapp/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// LoadSession resolves the caller's session from the store and puts it on
// the request context for handlers to read. Handlers that mutate the
// session save it back through the store themselves.
func LoadSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Load(c.Request)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// GetSession returns the session placed on the context by LoadSession.
// A missing entry yields a fresh anonymous session rather than a panic.
func GetSession(c *gin.Context) *session.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return &session.Session{}
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return &session.Session{}
	}
	return sess
}

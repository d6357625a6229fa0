// Package session provides server-side session storage backends and the
// gin middleware that gates protected routes on a live session.
package session

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the browser cookie carrying the session ID.
const CookieName = "taskboard_session"

// ContextUserID is the gin context key under which the authenticated
// user's ID is stored for downstream handlers.
const ContextUserID = "userID"

// Authenticator resolves a session cookie value to a user ID.
// Following Go convention, the interface is defined by the consumer
// (this middleware), not the provider (the auth usecase).
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (uint, error)
}

// AuthRequired returns a gin middleware that restricts access to
// requests carrying a live session. Unauthenticated requests are
// redirected to the login page, never answered with 401/403.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), id)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user id.
	UserIDContextKey = "userID"
	// UserEmailContextKey is a gin context key for the authenticated email.
	UserEmailContextKey = "userEmail"

	sessionCookieName = "bikestore_session"
	loginPath         = "/"
)

// SessionParser validates session tokens carried by the cookie.
type SessionParser interface {
	ParseSession(token string) (*pkgAuth.Session, error)
}

// SessionRequired gates a route on a valid session cookie. Requests
// without one are redirected to the login page and the handler never runs.
func SessionRequired(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		session, err := parser.ParseSession(token)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, session.UserID)
		c.Set(UserEmailContextKey, session.Email)
		c.Next()
	}
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

// SessionCookie carries the session token between page requests.
const SessionCookie = "merrymeal_session"

const userKey = "user"

// sessionToken extracts the session token from the Authorization
// header, falling back to the session cookie.
func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireSession rejects API requests that lack a valid session.
func (s *Server) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.sessions.Verify(sessionToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequirePage redirects page requests without a valid session to the
// login page.
func (s *Server) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.sessions.Verify(sessionToken(c))
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the user attached by the session middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/infrastructure/session"
)

const sessionKey = "pdv_session"

// AuthMiddleware resolves the session cookie into a live operator session.
// A missing or expired session aborts with 401 so the frontend falls back
// to the login screen.
func AuthMiddleware(auth *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authenticated",
			})
			return
		}

		sess, err := auth.Resolve(id)
		if err != nil {
			// session or bearer token expired, clear the cookie
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Session expired, please log in again",
			})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession extracts the operator session placed by AuthMiddleware.
func GetSession(c *gin.Context) *session.Session {
	val, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireAdmin rejects non-admin operators before the handler runs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.User.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

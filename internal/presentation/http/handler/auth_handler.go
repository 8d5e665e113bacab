package handler

import (
	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/config"
	"pdv-client/internal/presentation/http/dto/request"
	"pdv-client/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	cookie      config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Login forwards credentials to the backend and opens an operator session.
// The session ID rides on an HTTP-only cookie; the bearer token never
// reaches the browser.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(h.cookie.CookieName, sess.ID, int(h.cookie.TTL.Seconds()), "/", "", false, true)

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":    sess.User.ID,
			"name":  sess.User.Name,
			"email": sess.User.Email,
			"role":  sess.User.Role,
			"admin": sess.User.IsAdmin(),
		},
	})
}

// Logout drops the session and its cart.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cookie.CookieName); err == nil {
		h.authService.Logout(id)
	}
	c.SetCookie(h.cookie.CookieName, "", -1, "/", "", false, true)
	response.OK(c, "Logged out successfully", nil)
}

// GetProfile returns the operator behind the session.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	sess := GetSession(c)
	if sess == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":    sess.User.ID,
			"name":  sess.User.Name,
			"email": sess.User.Email,
			"role":  sess.User.Role,
			"admin": sess.User.IsAdmin(),
		},
	})
}

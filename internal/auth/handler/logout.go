package handler

import (
	"net/http"

	"blog-service/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout destroys the current session if one exists. It succeeds either
// way, so logging out twice is harmless.
func (h *Handler) Logout(c *gin.Context) {

	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort delete; an already-gone session is still a logout
		_ = h.sessions.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}

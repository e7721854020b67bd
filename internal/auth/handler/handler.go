package handler

import (
	"net/http"
	"time"

	"blog-service/internal/auth/credentials"
	"blog-service/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	creds      *credentials.Service
	sessions   session.Store
	sessionTTL time.Duration
}

func NewHandler(
	creds *credentials.Service,
	sessions session.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		creds:      creds,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
}

func (h *Handler) issueSession(c *gin.Context, userID string) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	if err := h.sessions.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	return nil
}

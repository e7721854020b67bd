package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/post"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	posts *post.Service
}

func NewHandler(posts *post.Service) *Handler {
	return &Handler{posts: posts}
}

// RegisterRoutes wires the public feed and the authenticated post routes.
// Feed and single-post reads are public; everything that names or mutates
// the caller's posts sits behind requireAuth.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/api/posts", h.Feed)
	r.GET("/api/posts/:id", h.View)

	authed := r.Group("/api")
	authed.Use(requireAuth)

	authed.GET("/me/posts", h.Dashboard)
	authed.POST("/posts", h.Create)
	authed.PUT("/posts/:id", h.Update)
	authed.DELETE("/posts/:id", h.Delete)
}

func currentUserID(c *gin.Context) string {
	id, _ := middleware.UserIDFromContext(c.Request.Context())
	return id
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return 0, false
	}
	return id, true
}

// writeError maps domain errors onto HTTP outcomes. Everything here is a
// user-visible notice; nothing is fatal.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, post.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, post.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	default:
		logger.Error("post operation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package handler

import (
	"net/http"

	"blog-service/internal/pagination"

	"github.com/gin-gonic/gin"
)

// Feed serves the public, newest-first list of all posts.
func (h *Handler) Feed(c *gin.Context) {
	page := pagination.Normalize(c.Query("page"))

	result, err := h.posts.Feed(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Dashboard serves the caller's own posts, newest first.
func (h *Handler) Dashboard(c *gin.Context) {
	page := pagination.Normalize(c.Query("page"))

	result, err := h.posts.Dashboard(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// View serves a single post by id.
func (h *Handler) View(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

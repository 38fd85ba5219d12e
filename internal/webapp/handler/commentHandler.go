package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes (all admin-only)
func (h *CommentHandler) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/", middleware.RequireAdmin())
	{
		admin.POST("/poems/:id/comment", h.Create)
		admin.POST("/comments/:id/delete", h.Delete)
	}
}

// Create appends a comment to a poem
// POST /poems/:id/comment
func (h *CommentHandler) Create(c *gin.Context) {
	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	var form dto.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Comment content is required")
		return
	}

	if _, err := h.commentService.CreateComment(c.Request.Context(), poemID, form.Content); err != nil {
		if errors.Is(err, service.ErrPoemNotFound) {
			c.String(http.StatusNotFound, "Poem not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes one comment and returns to its poem's detail page
// POST /comments/:id/delete
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Comment not found")
		return
	}

	poemID, err := h.commentService.DeleteComment(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.String(http.StatusNotFound, "Comment not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/poems/%d", poemID))
}

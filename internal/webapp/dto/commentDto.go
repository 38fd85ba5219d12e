package dto

import "poemhub/internal/webapp/models"

// CommentForm binds the add-comment form
type CommentForm struct {
	Content string `form:"content" binding:"required"`
}

// CommentView is a comment as rendered on the poem detail page
type CommentView struct {
	ID        int64
	Content   string
	CreatedAt string
}

// FromModelToCommentView converts a Comment model to its view
func FromModelToCommentView(comment *models.Comment) *CommentView {
	return &CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: formatDate(comment.CreatedAt),
	}
}

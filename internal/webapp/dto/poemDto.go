package dto

import (
	"time"

	"poemhub/internal/webapp/models"
)

// dateLayout is how every timestamp renders at the boundary.
const dateLayout = "2006-01-02"

// CreatePoemForm binds the create and edit poem forms
type CreatePoemForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// PoemSummary is the card shown on the home page
type PoemSummary struct {
	ID           int64
	Title        string
	Likes        int64
	Dislikes     int64
	UserReaction *int
	CreatedAt    string
}

// PoemDetail is the full poem view with its comments
type PoemDetail struct {
	ID           int64
	Title        string
	Content      string
	Likes        int64
	Dislikes     int64
	UserReaction *int
	CreatedAt    string
	Comments     []CommentView
}

// FromModelToPoemSummary converts a Poem model plus its reaction state to a
// PoemSummary view
func FromModelToPoemSummary(poem *models.Poem, likes, dislikes int64, userReaction *int) *PoemSummary {
	return &PoemSummary{
		ID:           poem.ID,
		Title:        poem.Title,
		Likes:        likes,
		Dislikes:     dislikes,
		UserReaction: userReaction,
		CreatedAt:    formatDate(poem.CreatedAt),
	}
}

// FromModelToPoemDetail converts a Poem model plus reactions and comments to
// a PoemDetail view
func FromModelToPoemDetail(poem *models.Poem, likes, dislikes int64, userReaction *int, comments []models.Comment) *PoemDetail {
	commentViews := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		commentViews = append(commentViews, *FromModelToCommentView(&comment))
	}

	return &PoemDetail{
		ID:           poem.ID,
		Title:        poem.Title,
		Content:      poem.Content,
		Likes:        likes,
		Dislikes:     dislikes,
		UserReaction: userReaction,
		CreatedAt:    formatDate(poem.CreatedAt),
		Comments:     commentViews,
	}
}

// formatDate renders a stored UTC instant as YYYY-MM-DD
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

package service

import (
	"context"
	"errors"

	"poemhub/internal/webapp/models"
	"poemhub/internal/webapp/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	CreateComment(ctx context.Context, poemID int64, content string) (*models.Comment, error)
	// DeleteComment removes one comment and reports the parent poem id so
	// the handler can redirect back to the detail page
	DeleteComment(ctx context.Context, commentID int64) (poemID int64, err error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	poemRepo    repository.PoemRepository
}

func NewCommentService(commentRepo repository.CommentRepository, poemRepo repository.PoemRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		poemRepo:    poemRepo,
	}
}

// CreateComment appends a comment to a poem
func (s *commentService) CreateComment(ctx context.Context, poemID int64, content string) (*models.Comment, error) {
	// Check if poem exists
	if _, err := s.poemRepo.GetByID(ctx, poemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoemNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PoemID:  poemID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment
func (s *commentService) DeleteComment(ctx context.Context, commentID int64) (int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}
	return comment.PoemID, nil
}

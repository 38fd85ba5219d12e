package service

import (
	"context"
	"testing"

	"poemhub/internal/webapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateComment_Success(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPoemRepo := new(MockPoemRepository)
	commentService := NewCommentService(mockCommentRepo, mockPoemRepo)

	mockPoemRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Poem{ID: 1}, nil)
	mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := commentService.CreateComment(context.Background(), 1, "Lovely imagery")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), comment.PoemID)
	assert.Equal(t, "Lovely imagery", comment.Content)
	mockCommentRepo.AssertExpectations(t)
}

func TestCreateComment_PoemNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPoemRepo := new(MockPoemRepository)
	commentService := NewCommentService(mockCommentRepo, mockPoemRepo)

	mockPoemRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := commentService.CreateComment(context.Background(), 42, "orphan")

	assert.ErrorIs(t, err, ErrPoemNotFound)
	mockCommentRepo.AssertNotCalled(t, "Create")
}

func TestDeleteComment_ReturnsParentPoem(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPoemRepo := new(MockPoemRepository)
	commentService := NewCommentService(mockCommentRepo, mockPoemRepo)

	mockCommentRepo.On("GetByID", mock.Anything, int64(10)).Return(&models.Comment{ID: 10, PoemID: 3}, nil)
	mockCommentRepo.On("Delete", mock.Anything, int64(10)).Return(nil)

	poemID, err := commentService.DeleteComment(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), poemID)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPoemRepo := new(MockPoemRepository)
	commentService := NewCommentService(mockCommentRepo, mockPoemRepo)

	mockCommentRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := commentService.DeleteComment(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCommentNotFound)
	mockCommentRepo.AssertNotCalled(t, "Delete")
}

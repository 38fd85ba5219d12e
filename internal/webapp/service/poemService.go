package service

import (
	"context"
	"errors"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/models"
	"poemhub/internal/webapp/repository"

	"gorm.io/gorm"
)

type PoemService interface {
	CreatePoem(ctx context.Context, title, content string) (*models.Poem, error)
	UpdatePoem(ctx context.Context, id int64, title, content string) (*models.Poem, error)
	DeletePoem(ctx context.Context, id int64) error
	GetPoem(ctx context.Context, id int64) (*models.Poem, error)
	ListPoems(ctx context.Context, sessionID string) ([]dto.PoemSummary, error)
	GetPoemDetail(ctx context.Context, id int64, sessionID string) (*dto.PoemDetail, error)
}

type poemService struct {
	poemRepo     repository.PoemRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
}

func NewPoemService(
	poemRepo repository.PoemRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
) PoemService {
	return &poemService{
		poemRepo:     poemRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// CreatePoem creates a new poem
func (s *poemService) CreatePoem(ctx context.Context, title, content string) (*models.Poem, error) {
	poem := &models.Poem{
		Title:   title,
		Content: content,
	}
	if err := s.poemRepo.Create(ctx, poem); err != nil {
		return nil, err
	}
	return poem, nil
}

// UpdatePoem updates an existing poem's title and content
func (s *poemService) UpdatePoem(ctx context.Context, id int64, title, content string) (*models.Poem, error) {
	poem, err := s.poemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoemNotFound
		}
		return nil, err
	}

	poem.Title = title
	poem.Content = content
	if err := s.poemRepo.Update(ctx, id, poem); err != nil {
		return nil, err
	}
	return poem, nil
}

// DeletePoem removes a poem together with its comments and reactions
func (s *poemService) DeletePoem(ctx context.Context, id int64) error {
	if _, err := s.poemRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPoemNotFound
		}
		return err
	}
	return s.poemRepo.Delete(ctx, id)
}

// GetPoem retrieves a single poem
func (s *poemService) GetPoem(ctx context.Context, id int64) (*models.Poem, error) {
	poem, err := s.poemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoemNotFound
		}
		return nil, err
	}
	return poem, nil
}

// ListPoems returns every poem, most recent first, annotated with reaction
// counts and the caller's own vote
func (s *poemService) ListPoems(ctx context.Context, sessionID string) ([]dto.PoemSummary, error) {
	poems, err := s.poemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// One query for all of the caller's votes instead of one per poem
	userVotes := map[int64]int{}
	if sessionID != "" {
		reactions, err := s.reactionRepo.GetBySessionAll(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		for _, reaction := range reactions {
			userVotes[reaction.PoemID] = reaction.Value
		}
	}

	summaries := make([]dto.PoemSummary, 0, len(poems))
	for i := range poems {
		poem := &poems[i]
		likes, dislikes, err := s.reactionRepo.Counts(ctx, poem.ID)
		if err != nil {
			return nil, err
		}

		var userReaction *int
		if value, ok := userVotes[poem.ID]; ok {
			v := value
			userReaction = &v
		}

		summaries = append(summaries, *dto.FromModelToPoemSummary(poem, likes, dislikes, userReaction))
	}

	return summaries, nil
}

// GetPoemDetail returns the full poem view: counts, the caller's vote, and
// the ordered comment list
func (s *poemService) GetPoemDetail(ctx context.Context, id int64, sessionID string) (*dto.PoemDetail, error) {
	poem, err := s.poemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoemNotFound
		}
		return nil, err
	}

	likes, dislikes, err := s.reactionRepo.Counts(ctx, id)
	if err != nil {
		return nil, err
	}

	var userReaction *int
	if sessionID != "" {
		reaction, err := s.reactionRepo.GetBySession(ctx, id, sessionID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if reaction != nil {
			v := reaction.Value
			userReaction = &v
		}
	}

	comments, err := s.commentRepo.GetByPoem(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToPoemDetail(poem, likes, dislikes, userReaction, comments), nil
}

package service

import (
	"context"
	"errors"

	"poemhub/internal/webapp/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPoemNotFound    = errors.New("poem not found")
	ErrInvalidReaction = errors.New("reaction value must be +1 or -1")
)

type ReactionService interface {
	Apply(ctx context.Context, poemID int64, sessionID string, value int) (repository.ReactionOutcome, error)
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
	poemRepo     repository.PoemRepository
}

func NewReactionService(reactionRepo repository.ReactionRepository, poemRepo repository.PoemRepository) ReactionService {
	return &reactionService{
		reactionRepo: reactionRepo,
		poemRepo:     poemRepo,
	}
}

// Apply records a vote for one (poem, session) pair: first vote inserts,
// a repeat of the same value clears, the opposite value flips. Two first
// votes racing on the same pair trip the unique index; the loser retries
// once and lands on the clear/flip branch instead.
func (s *reactionService) Apply(ctx context.Context, poemID int64, sessionID string, value int) (repository.ReactionOutcome, error) {
	if value != 1 && value != -1 {
		return "", ErrInvalidReaction
	}

	// Check if poem exists
	if _, err := s.poemRepo.GetByID(ctx, poemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPoemNotFound
		}
		return "", err
	}

	outcome, err := s.reactionRepo.Apply(ctx, poemID, sessionID, value)
	if err != nil && isUniqueViolation(err) {
		outcome, err = s.reactionRepo.Apply(ctx, poemID, sessionID, value)
	}
	if err != nil {
		// the poem can be deleted between the existence check and the
		// insert; the FK violation is still a 404 to the caller
		if isForeignKeyViolation(err) {
			return "", ErrPoemNotFound
		}
		return "", err
	}
	return outcome, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (SQLSTATE 23503)
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

package repository

import (
	"context"
	"errors"

	"poemhub/internal/webapp/models"

	"gorm.io/gorm"
)

// ReactionOutcome describes what a vote submission did to the ledger.
type ReactionOutcome string

const (
	OutcomeApplied ReactionOutcome = "applied" // first vote for the pair
	OutcomeFlipped ReactionOutcome = "flipped" // opposite value replaced the old one
	OutcomeCleared ReactionOutcome = "cleared" // same value submitted twice, row removed
)

type ReactionRepository interface {
	// Apply runs the whole lookup/insert/flip/clear sequence for one
	// (poem, session) pair inside a single transaction.
	Apply(ctx context.Context, poemID int64, sessionID string, value int) (ReactionOutcome, error)
	GetBySession(ctx context.Context, poemID int64, sessionID string) (*models.Reaction, error)
	Counts(ctx context.Context, poemID int64) (likes, dislikes int64, err error)
	GetBySessionAll(ctx context.Context, sessionID string) ([]models.Reaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Apply(ctx context.Context, poemID int64, sessionID string, value int) (ReactionOutcome, error) {
	var outcome ReactionOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("poem_id = ? AND session_id = ?", poemID, sessionID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reaction := &models.Reaction{
				PoemID:    poemID,
				SessionID: sessionID,
				Value:     value,
			}
			if err := tx.Create(reaction).Error; err != nil {
				return err
			}
			outcome = OutcomeApplied
			return nil

		case err != nil:
			return err

		case existing.Value == value:
			// same vote twice in a row un-votes
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			outcome = OutcomeCleared
			return nil

		default:
			existing.Value = value
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			outcome = OutcomeFlipped
			return nil
		}
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// GetBySession retrieves one session's reaction for a specific poem
func (r *reactionRepository) GetBySession(ctx context.Context, poemID int64, sessionID string) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.WithContext(ctx).
		Where("poem_id = ? AND session_id = ?", poemID, sessionID).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// Counts returns the number of likes and dislikes for a poem over all sessions
func (r *reactionRepository) Counts(ctx context.Context, poemID int64) (int64, int64, error) {
	var likes, dislikes int64

	if err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Where("poem_id = ? AND value = ?", poemID, models.ReactionLike).
		Count(&likes).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Where("poem_id = ? AND value = ?", poemID, models.ReactionDislike).
		Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}

	return likes, dislikes, nil
}

// GetBySessionAll retrieves every reaction a session has submitted,
// used to annotate the poem list with the caller's own votes
func (r *reactionRepository) GetBySessionAll(ctx context.Context, sessionID string) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

package repository

import (
	"context"
	"fmt"

	"poemhub/internal/webapp/models"

	"gorm.io/gorm"
)

type PoemRepository interface {
	Create(ctx context.Context, poem *models.Poem) error
	Update(ctx context.Context, id int64, poem *models.Poem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Poem, error)
	GetAll(ctx context.Context) ([]models.Poem, error)
}

// poemRepository is the GORM implementation of PoemRepository.
type poemRepository struct {
	db *gorm.DB
}

func NewPoemRepository(db *gorm.DB) PoemRepository {
	return &poemRepository{db: db}
}

func (r *poemRepository) Create(ctx context.Context, poem *models.Poem) error {
	if err := r.db.WithContext(ctx).Create(poem).Error; err != nil {
		return fmt.Errorf("create poem: %w", err)
	}
	// GORM will populate poem.ID and poem.CreatedAt
	return nil
}

func (r *poemRepository) Update(ctx context.Context, id int64, poem *models.Poem) error {
	// ensure ID set for Save
	poem.ID = id
	if err := r.db.WithContext(ctx).Save(poem).Error; err != nil {
		return fmt.Errorf("update poem: %w", err)
	}
	return nil
}

// Delete removes the poem together with its comments and reactions inside
// one transaction. The FK constraints cascade on Postgres; the explicit
// deletes keep the behavior identical on stores that ignore them.
func (r *poemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poem_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return fmt.Errorf("delete poem reactions: %w", err)
		}
		if err := tx.Where("poem_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete poem comments: %w", err)
		}
		if err := tx.Delete(&models.Poem{}, id).Error; err != nil {
			return fmt.Errorf("delete poem: %w", err)
		}
		return nil
	})
}

func (r *poemRepository) GetByID(ctx context.Context, id int64) (*models.Poem, error) {
	var p models.Poem
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll returns every poem, most recent first.
func (r *poemRepository) GetAll(ctx context.Context) ([]models.Poem, error) {
	var list []models.Poem
	if err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

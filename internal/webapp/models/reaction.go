package models

import "time"

// Reaction values: +1 is a like, -1 is a dislike.
const (
	ReactionLike    = 1
	ReactionDislike = -1
)

// Reaction records one browser session's vote on a poem. The composite
// unique index enforces at most one row per (poem, session) pair; the
// toggle/flip transitions live in the reaction repository.
type Reaction struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PoemID    int64     `json:"poem_id" gorm:"not null;uniqueIndex:idx_reactions_poem_session"`
	SessionID string    `json:"session_id" gorm:"not null;uniqueIndex:idx_reactions_poem_session"`
	Value     int       `json:"value" gorm:"not null;check:value IN (-1, 1)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Poem Poem `json:"poem,omitempty" gorm:"foreignKey:PoemID;constraint:OnDelete:CASCADE;"`
}

func (Reaction) TableName() string {
	return "reactions"
}

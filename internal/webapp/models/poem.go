package models

import "time"

type Poem struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Associations (deleted with the poem)
	Comments  []Comment  `json:"comments,omitempty" gorm:"foreignKey:PoemID;constraint:OnDelete:CASCADE;"`
	Reactions []Reaction `json:"reactions,omitempty" gorm:"foreignKey:PoemID;constraint:OnDelete:CASCADE;"`
}

func (Poem) TableName() string {
	return "poems"
}

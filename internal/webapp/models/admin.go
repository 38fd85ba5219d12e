package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin accounts are created out-of-band (cmd/admin-cli or the env
// bootstrap), never through the web surface.
type Admin struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate hook to set UUID before creating an Admin
func (admin *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	return
}

func (Admin) TableName() string {
	return "admins"
}

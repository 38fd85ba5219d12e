package repository

import (
	"poemhub/internal/webapp/models"

	"gorm.io/gorm"
)

// AdminRepository defines the interface for admin account lookups and the
// out-of-band provisioning path.
type AdminRepository interface {
	Create(admin *models.Admin) error
	FindByUsername(username string) (*models.Admin, error)
}

// adminRepository is the GORM implementation of AdminRepository.
type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	// prevent returning a zero-value struct when the row is missing
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

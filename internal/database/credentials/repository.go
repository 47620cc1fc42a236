// Package credentials provides database operations for the admin login row.
package credentials

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/entities"
)

// Repository handles login table operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new credentials repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByUsername retrieves the credential for a user.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Credential, error) {
	var cred entities.Credential
	// Struct condition so the reserved column name gets quoted
	err := r.db.WithContext(ctx).Where(&entities.Credential{Username: username}).First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// SeedIfEmpty inserts cred only when the login table has no rows at all.
// Reports whether a row was created.
func (r *Repository) SeedIfEmpty(ctx context.Context, cred *entities.Credential) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Credential{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Create(cred).Error; err != nil {
		return false, err
	}
	return true, nil
}

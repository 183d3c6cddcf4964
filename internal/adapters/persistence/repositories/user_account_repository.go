package repositories

import (
	"context"

	"staffhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userAccountRepository implements UserAccountRepository interface
type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository creates a new user account repository
func NewUserAccountRepository(db *gorm.DB) UserAccountRepository {
	return &userAccountRepository{db: db}
}

// Create creates a new user account (seeding only)
func (r *userAccountRepository) Create(ctx context.Context, user *models.UserAccount) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByUsername gets a user account by username
func (r *userAccountRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	var user models.UserAccount
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count counts stored user accounts
func (r *userAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserAccount{}).Count(&count).Error
	return count, err
}

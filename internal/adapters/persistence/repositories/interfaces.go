package repositories

import (
	"context"

	"staffhub/internal/adapters/persistence/models"
)

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// UserAccountRepository defines user account repository interface.
// Accounts are read-only after seeding; no update or delete.
type UserAccountRepository interface {
	Create(ctx context.Context, user *models.UserAccount) error
	GetByUsername(ctx context.Context, username string) (*models.UserAccount, error)
	Count(ctx context.Context) (int64, error)
}

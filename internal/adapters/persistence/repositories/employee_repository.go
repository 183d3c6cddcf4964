package repositories

import (
	"context"

	"staffhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create persists a new employee. When employee.ID is zero the store
// assigns the identifier; a non-zero ID is written as-is (upsert's
// insert path carries the caller-specified id).
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetByID gets an employee by ID
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns all employees in the store's natural order
func (r *employeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := r.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Update updates an employee
func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete deletes an employee
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Employee{}, id).Error
}

// ExistsByID checks if an employee exists
func (r *employeeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

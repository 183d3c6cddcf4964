package services

import (
	"context"
	"errors"
	"log"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/cache"

	"gorm.io/gorm"
)

// allEmployeesKey is the single key of the full-list cache region
const allEmployeesKey = "all"

// EmployeeService orchestrates the employee store and its read-through
// caches. Two regions front the store: the full list and single
// entries by id. Any mutation invalidates BOTH regions entirely before
// the call returns, so no read can observe a write that has not yet
// cleared the cache. Correctness over hit-rate: write volume is low
// and the data set small.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	allCache     *cache.Region[string, []*models.Employee]
	byIDCache    *cache.Region[uint, *models.Employee]
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		allCache:     cache.NewRegion[string, []*models.Employee](),
		byIDCache:    cache.NewRegion[uint, *models.Employee](),
	}
}

// FindAll returns all employees, cached after the first read
func (s *EmployeeService) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return s.allCache.GetOrLoad(allEmployeesKey, func() ([]*models.Employee, error) {
		log.Println("💾 DB hit for FindAll")
		return s.employeeRepo.List(ctx)
	})
}

// FindByID returns one employee, cached after the first read
func (s *EmployeeService) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.byIDCache.GetOrLoad(id, func() (*models.Employee, error) {
		log.Printf("💾 DB hit for FindByID %d", id)
		return s.employeeRepo.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// Create persists a new employee and invalidates both cache regions.
// The id is assigned by the store; any id on the input is discarded.
func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	employee.ID = 0

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.invalidateCaches()
	return employee, nil
}

// Upsert overwrites the mutable fields of the employee with the given
// id, or inserts a new record carrying that id when absent. The
// caller-supplied id on the insert path bypasses store assignment and
// may collide with a future auto-assigned id; that is the contract.
func (s *EmployeeService) Upsert(ctx context.Context, id uint, employee *models.Employee) (*models.Employee, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		existing.FirstName = employee.FirstName
		existing.LastName = employee.LastName
		existing.Role = employee.Role
		if err := s.employeeRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.invalidateCaches()
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		employee.ID = id
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return nil, err
		}
		s.invalidateCaches()
		return employee, nil

	default:
		return nil, err
	}
}

// Delete removes an employee and invalidates both cache regions.
// Fails with ErrEmployeeNotFound when the id is absent.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	exists, err := s.employeeRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCaches()
	return nil
}

// invalidateCaches clears both regions wholesale after any mutation
func (s *EmployeeService) invalidateCaches() {
	s.allCache.InvalidateAll()
	s.byIDCache.InvalidateAll()
}

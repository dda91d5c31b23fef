package repositories

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee reference data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployees retrieves every active employee, ordered by legajo number.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee reference data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's mutable fields.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

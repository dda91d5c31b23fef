package services

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee reference data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves a specific employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all active employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee reference data
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// UpdateEmployee applies the non-nil fields of req to an employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error)

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, requestingUserID string) error
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}

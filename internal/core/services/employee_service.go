package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
)

// employeeService administers employee reference data.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	rateCardRepo portsrepo.RateCardRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, rateCardRepo portsrepo.RateCardRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		rateCardRepo: rateCardRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployeeByID implements portssvc.EmployeeReaderSvc.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

// ListEmployees implements portssvc.EmployeeReaderSvc.
func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListActiveEmployees(ctx)
}

// CreateEmployee implements portssvc.EmployeeWriterSvc.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hire date %q", apperrors.ErrValidation, req.HireDate)
	}
	if err := s.validateOverrides(ctx, req.RateCardID, req.MonthlySalary, req.StandardMonthlyHours, req.HealthRate, req.UnionRate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID:           uuid.NewString(),
		LegajoNumber:         req.LegajoNumber,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		HireDate:             hireDate.UTC(),
		RateCardID:           req.RateCardID,
		MonthlySalary:        req.MonthlySalary,
		StandardMonthlyHours: req.StandardMonthlyHours,
		HealthRate:           req.HealthRate,
		UnionRate:            req.UnionRate,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return &employee, nil
}

// UpdateEmployee implements portssvc.EmployeeWriterSvc.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.validateOverrides(ctx, req.RateCardID, req.MonthlySalary, req.StandardMonthlyHours, req.HealthRate, req.UnionRate); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.RateCardID != nil {
		employee.RateCardID = req.RateCardID
	}
	if req.MonthlySalary != nil {
		employee.MonthlySalary = req.MonthlySalary
	}
	if req.StandardMonthlyHours != nil {
		employee.StandardMonthlyHours = req.StandardMonthlyHours
	}
	if req.HealthRate != nil {
		employee.HealthRate = req.HealthRate
	}
	if req.UnionRate != nil {
		employee.UnionRate = req.UnionRate
	}
	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = requestingUserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// DeactivateEmployee implements portssvc.EmployeeWriterSvc.
func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, requestingUserID string) error {
	return s.employeeRepo.DeactivateEmployee(ctx, employeeID, requestingUserID)
}

// validateOverrides rejects override values the computation engine cannot use.
func (s *employeeService) validateOverrides(ctx context.Context, rateCardID *string, monthlySalary, standardHours, healthRate, unionRate *decimal.Decimal) error {
	if rateCardID != nil && *rateCardID != "" {
		if _, err := s.rateCardRepo.FindRateCardByID(ctx, *rateCardID); err != nil {
			return fmt.Errorf("%w: rate card %s: %v", apperrors.ErrValidation, *rateCardID, err)
		}
	}
	if monthlySalary != nil && monthlySalary.IsNegative() {
		return fmt.Errorf("%w: monthly salary must not be negative", apperrors.ErrValidation)
	}
	if standardHours != nil && standardHours.IsNegative() {
		return fmt.Errorf("%w: standard monthly hours must not be negative", apperrors.ErrValidation)
	}
	for _, rate := range []*decimal.Decimal{healthRate, unionRate} {
		if rate != nil && (rate.IsNegative() || rate.GreaterThan(decimalOne)) {
			return fmt.Errorf("%w: percentage overrides must be between 0 and 1", apperrors.ErrValidation)
		}
	}
	return nil
}

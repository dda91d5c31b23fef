package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// payrollService orchestrates statement computation: it gathers the inputs
// from the repositories, hands them to the pure engine and persists the
// result.
type payrollService struct {
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	statementRepo  portsrepo.StatementRepositoryWithTx
	rateCardSvc    portssvc.RateCardSvcFacade
	timesheetSvc   portssvc.TimesheetSvcFacade
	policy         domain.PayPolicy
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	statementRepo portsrepo.StatementRepositoryWithTx,
	rateCardSvc portssvc.RateCardSvcFacade,
	timesheetSvc portssvc.TimesheetSvcFacade,
	policy domain.PayPolicy,
) portssvc.PayrollSvcFacade {
	return &payrollService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		statementRepo:  statementRepo,
		rateCardSvc:    rateCardSvc,
		timesheetSvc:   timesheetSvc,
		policy:         policy,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// ComputeStatement implements portssvc.PayrollComputeSvc.
func (s *payrollService) ComputeStatement(ctx context.Context, employeeID string, period domain.Period, status domain.StatementStatus, creatorUserID string) (*domain.PayStatement, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: employee %s: %v", apperrors.ErrMissingInputData, employeeID, err)
	}

	statement, err := s.computeForEmployee(ctx, *employee, period, status)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	statement.StatementID = uuid.NewString()
	statement.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	if err := s.statementRepo.SaveStatement(ctx, *statement); err != nil {
		return nil, fmt.Errorf("failed to save statement: %w", err)
	}
	return statement, nil
}

// computeForEmployee assembles the engine input for one employee and runs it.
// No persistence happens here; batch runs reuse it per unit.
func (s *payrollService) computeForEmployee(ctx context.Context, employee domain.Employee, period domain.Period, status domain.StatementStatus) (*domain.PayStatement, error) {
	card, err := s.rateCardSvc.ResolveForPeriod(ctx, employee, period)
	if err != nil {
		return nil, err
	}

	standardHours := EffectiveStandardHours(employee, card, period, s.policy)
	summary, err := s.timesheetSvc.AggregatePeriod(ctx, employee, period, standardHours)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.attendanceRepo.ListAdjustmentsForPeriod(ctx, employee.EmployeeID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjustments for employee %s: %w", employee.EmployeeID, err)
	}

	statement, err := BuildStatement(StatementInput{
		Employee:    employee,
		Period:      period,
		RateCard:    card,
		Summary:     summary,
		Adjustments: adjustments,
		Policy:      s.policy,
		Status:      status,
		// The bonus is granted by default; an unexcused absence surfaces as an
		// adjustment or a policy change upstream, not as attendance data here.
		AttendanceBonusEligible: true,
	})
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

// RunPayroll implements portssvc.PayrollComputeSvc.
func (s *payrollService) RunPayroll(ctx context.Context, req dto.RunPayrollRequest, creatorUserID string) (*dto.RunPayrollResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	status := domain.StatementDraft
	if req.Final {
		status = domain.StatementFinal
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	response := &dto.RunPayrollResponse{
		Period:  period.String(),
		Final:   req.Final,
		Results: make([]dto.RunUnitResult, 0, len(employees)),
	}

	for _, employee := range employees {
		result := dto.RunUnitResult{
			EmployeeID:   employee.EmployeeID,
			LegajoNumber: employee.LegajoNumber,
		}

		statement, unitErr := s.ComputeStatement(ctx, employee.EmployeeID, period, status, creatorUserID)
		if unitErr != nil {
			// One employee's bad data must not sink the rest of the run.
			logger.Error("payroll unit failed",
				slog.String("employee_id", employee.EmployeeID),
				slog.String("period", period.String()),
				slog.String("error", unitErr.Error()))
			result.Error = unitErr.Error()
			response.Failed++
		} else {
			net := statement.Net
			result.StatementID = statement.StatementID
			result.Net = &net
			response.Computed++
		}
		response.Results = append(response.Results, result)
	}

	logger.Info("payroll run finished",
		slog.String("period", period.String()),
		slog.Bool("final", req.Final),
		slog.Int("computed", response.Computed),
		slog.Int("failed", response.Failed))
	return response, nil
}

// GetAttendanceSummary implements portssvc.PayrollReaderSvc.
func (s *payrollService) GetAttendanceSummary(ctx context.Context, employeeID string, period domain.Period) (*domain.AttendancePunchSummary, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	card, err := s.rateCardSvc.ResolveForPeriod(ctx, *employee, period)
	if err != nil {
		return nil, err
	}
	summary, err := s.timesheetSvc.AggregatePeriod(ctx, *employee, period, EffectiveStandardHours(*employee, card, period, s.policy))
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetStatementByID implements portssvc.PayrollReaderSvc.
func (s *payrollService) GetStatementByID(ctx context.Context, statementID string) (*domain.PayStatement, error) {
	return s.statementRepo.FindStatementByID(ctx, statementID)
}

// GetLatestStatement implements portssvc.PayrollReaderSvc.
func (s *payrollService) GetLatestStatement(ctx context.Context, employeeID string, period domain.Period) (*domain.PayStatement, error) {
	return s.statementRepo.FindLatestStatement(ctx, employeeID, period)
}

// ListStatementsByPeriod implements portssvc.PayrollReaderSvc.
func (s *payrollService) ListStatementsByPeriod(ctx context.Context, period domain.Period) ([]domain.PayStatement, error) {
	return s.statementRepo.ListStatementsByPeriod(ctx, period)
}

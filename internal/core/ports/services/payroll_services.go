package services

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
)

// PayrollComputeSvc computes pay statements.
type PayrollComputeSvc interface {
	// ComputeStatement produces (and persists) the statement of one employee
	// for one period. Final statements refuse anomalous attendance; draft
	// statements carry the anomaly flags. Identical inputs yield identical
	// concepts and totals.
	ComputeStatement(ctx context.Context, employeeID string, period domain.Period, status domain.StatementStatus, creatorUserID string) (*domain.PayStatement, error)

	// RunPayroll computes every active employee for a period, collecting a
	// per-unit result list. A failing unit never aborts the rest of the batch.
	RunPayroll(ctx context.Context, req dto.RunPayrollRequest, creatorUserID string) (*dto.RunPayrollResponse, error)
}

// PayrollReaderSvc defines read operations for computed statements
type PayrollReaderSvc interface {
	// GetStatementByID retrieves a statement with its concepts.
	GetStatementByID(ctx context.Context, statementID string) (*domain.PayStatement, error)

	// GetLatestStatement retrieves the newest statement of an employee/period.
	GetLatestStatement(ctx context.Context, employeeID string, period domain.Period) (*domain.PayStatement, error)

	// ListStatementsByPeriod retrieves the latest statement per employee.
	ListStatementsByPeriod(ctx context.Context, period domain.Period) ([]domain.PayStatement, error)

	// GetAttendanceSummary aggregates an employee's punches for a period
	// against their effective standard hours, without computing pay. Used to
	// inspect hours and anomalies before a run.
	GetAttendanceSummary(ctx context.Context, employeeID string, period domain.Period) (*domain.AttendancePunchSummary, error)
}

// PayrollSvcFacade combines all payroll service interfaces
type PayrollSvcFacade interface {
	PayrollComputeSvc
	PayrollReaderSvc
}

package services

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TimesheetAggregatorSvc turns raw punches into per-period hour totals.
type TimesheetAggregatorSvc interface {
	// AggregatePeriod sums an employee's worked intervals for the period and
	// splits hours above effectiveStandardHours into the overtime tiers.
	// Days with inconsistent punches are flagged anomalous and excluded from
	// the totals; they never produce negative hours.
	AggregatePeriod(ctx context.Context, employee domain.Employee, period domain.Period, effectiveStandardHours decimal.Decimal) (domain.AttendancePunchSummary, error)
}

// TimesheetWriterSvc defines write operations for attendance data
type TimesheetWriterSvc interface {
	// RecordPunches ingests a batch of raw punches.
	RecordPunches(ctx context.Context, req dto.RecordPunchesRequest, creatorUserID string) (int, error)

	// CreateAdjustment records a manual pay adjustment for an employee/period.
	CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error)
}

// TimesheetSvcFacade combines all timesheet service interfaces
type TimesheetSvcFacade interface {
	TimesheetAggregatorSvc
	TimesheetWriterSvc
}

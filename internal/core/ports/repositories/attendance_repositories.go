package repositories

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// PunchReader defines read operations for raw attendance punches
type PunchReader interface {
	// ListPunchesForPeriod retrieves an employee's punches inside a period,
	// ordered by timestamp. An employee with no punches yields an empty slice,
	// not an error.
	ListPunchesForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Punch, error)
}

// PunchWriter defines write operations for raw attendance punches
type PunchWriter interface {
	// SavePunches persists a batch of punches.
	SavePunches(ctx context.Context, punches []domain.Punch) error
}

// AdjustmentReader defines read operations for pay adjustments
type AdjustmentReader interface {
	// ListAdjustmentsForPeriod retrieves the adjustments entered for an
	// employee and period, in creation order.
	ListAdjustmentsForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Adjustment, error)
}

// AdjustmentWriter defines write operations for pay adjustments
type AdjustmentWriter interface {
	// SaveAdjustment persists a new adjustment.
	SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error
}

// AttendanceRepositoryFacade combines punch and adjustment repository interfaces
type AttendanceRepositoryFacade interface {
	PunchReader
	PunchWriter
	AdjustmentReader
	AdjustmentWriter
}

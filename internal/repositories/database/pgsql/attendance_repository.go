package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/mapping"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for punches and adjustments.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

// ListPunchesForPeriod retrieves an employee's punches inside a period,
// ordered by timestamp.
func (r *PgxAttendanceRepository) ListPunchesForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Punch, error) {
	query := `
		SELECT punch_id, employee_id, punched_at, direction,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM attendance_punches
		WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
		ORDER BY punched_at;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, period.Start(), period.Start().AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var punches []domain.Punch
	for rows.Next() {
		var m models.Punch
		if err := rows.Scan(
			&m.PunchID, &m.EmployeeID, &m.Timestamp, &m.Direction,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}
		punches = append(punches, mapping.ToDomainPunch(m))
	}
	return punches, rows.Err()
}

// SavePunches persists a batch of punches.
func (r *PgxAttendanceRepository) SavePunches(ctx context.Context, punches []domain.Punch) error {
	if len(punches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO attendance_punches (
			punch_id, employee_id, punched_at, direction,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, punch := range punches {
		m := mapping.ToModelPunch(punch)
		batch.Queue(query,
			m.PunchID, m.EmployeeID, m.Timestamp, m.Direction,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range punches {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save punch batch: %w", err)
		}
	}
	return nil
}

// ListAdjustmentsForPeriod retrieves the adjustments for an employee and
// period, in creation order.
func (r *PgxAttendanceRepository) ListAdjustmentsForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Adjustment, error) {
	query := `
		SELECT adjustment_id, employee_id, period, code, description, amount, kind,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM pay_adjustments
		WHERE employee_id = $1 AND period = $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, period.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var adjustments []domain.Adjustment
	for rows.Next() {
		var m models.Adjustment
		if err := rows.Scan(
			&m.AdjustmentID, &m.EmployeeID, &m.Period, &m.Code, &m.Description, &m.Amount, &m.Kind,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment row: %w", err)
		}
		adjustment, err := mapping.ToDomainAdjustment(m)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adjustment)
	}
	return adjustments, rows.Err()
}

// SaveAdjustment persists a new adjustment.
func (r *PgxAttendanceRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	m := mapping.ToModelAdjustment(adjustment)
	query := `
		INSERT INTO pay_adjustments (
			adjustment_id, employee_id, period, code, description, amount, kind,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AdjustmentID, m.EmployeeID, m.Period, m.Code, m.Description, m.Amount, m.Kind,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save adjustment %s: %w", m.AdjustmentID, err)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/mapping"
)

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for pay statements.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryWithTx {
	return &PgxStatementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StatementRepositoryWithTx = (*PgxStatementRepository)(nil)

const statementColumns = `
	statement_id, employee_id, legajo_number, employee_name, period, rate_card_name, status,
	total_remunerative, total_non_remunerative, total_deductions, net,
	normal_hours, overtime_tier1_hours, overtime_tier2_hours, days_worked, anomalous_days,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveStatement persists a statement and all its concepts within one database
// transaction; either the full statement lands or none of it.
func (r *PgxStatementRepository) SaveStatement(ctx context.Context, statement domain.PayStatement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayStatement(statement)
	statementQuery := `
		INSERT INTO pay_statements (` + statementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, statementQuery,
		m.StatementID, m.EmployeeID, m.LegajoNumber, m.EmployeeName, m.Period, m.RateCardName, m.Status,
		m.TotalRemunerative, m.TotalNonRemunerative, m.TotalDeductions, m.Net,
		m.NormalHours, m.OvertimeTier1Hours, m.OvertimeTier2Hours, m.DaysWorked, m.AnomalousDays,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert statement %s: %w", m.StatementID, err)
	}

	batch := &pgx.Batch{}
	conceptQuery := `
		INSERT INTO pay_concepts (statement_id, line_no, code, description, quantity, unit_value, amount, kind)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	conceptRows := mapping.ToModelPayConcepts(statement)
	for _, row := range conceptRows {
		batch.Queue(conceptQuery,
			row.StatementID, row.LineNo, row.Code, row.Description,
			row.Quantity, row.UnitValue, row.Amount, row.Kind,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range conceptRows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert concepts for statement %s: %w", m.StatementID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close concept batch for statement %s: %w", m.StatementID, err)
	}

	return r.Commit(ctx, tx)
}

// FindStatementByID retrieves a statement with its concept lists.
func (r *PgxStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.PayStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM pay_statements WHERE statement_id = $1;`

	var m models.PayStatement
	err := r.Pool.QueryRow(ctx, query, statementID).Scan(
		&m.StatementID, &m.EmployeeID, &m.LegajoNumber, &m.EmployeeName, &m.Period, &m.RateCardName, &m.Status,
		&m.TotalRemunerative, &m.TotalNonRemunerative, &m.TotalDeductions, &m.Net,
		&m.NormalHours, &m.OvertimeTier1Hours, &m.OvertimeTier2Hours, &m.DaysWorked, &m.AnomalousDays,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement %s: %w", statementID, err)
	}

	concepts, err := r.loadConcepts(ctx, statementID)
	if err != nil {
		return nil, err
	}
	statement, err := mapping.ToDomainPayStatement(m, concepts)
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

// FindLatestStatement retrieves the most recent statement for an employee and period.
func (r *PgxStatementRepository) FindLatestStatement(ctx context.Context, employeeID string, period domain.Period) (*domain.PayStatement, error) {
	query := `
		SELECT statement_id FROM pay_statements
		WHERE employee_id = $1 AND period = $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var statementID string
	err := r.Pool.QueryRow(ctx, query, employeeID, period.String()).Scan(&statementID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest statement for employee %s period %s: %w", employeeID, period.String(), err)
	}
	return r.FindStatementByID(ctx, statementID)
}

// ListStatementsByPeriod retrieves the latest statement of every employee for
// a period, ordered by legajo number.
func (r *PgxStatementRepository) ListStatementsByPeriod(ctx context.Context, period domain.Period) ([]domain.PayStatement, error) {
	query := `
		SELECT DISTINCT ON (employee_id) statement_id
		FROM pay_statements
		WHERE period = $1
		ORDER BY employee_id, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, period.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list statements for period %s: %w", period.String(), err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan statement id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statements := make([]domain.PayStatement, 0, len(ids))
	for _, id := range ids {
		statement, err := r.FindStatementByID(ctx, id)
		if err != nil {
			return nil, err
		}
		statements = append(statements, *statement)
	}
	// Stable order for exports and ledger aggregation.
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].LegajoNumber < statements[j].LegajoNumber
	})
	return statements, nil
}

func (r *PgxStatementRepository) loadConcepts(ctx context.Context, statementID string) ([]models.PayConcept, error) {
	query := `
		SELECT statement_id, line_no, code, description, quantity, unit_value, amount, kind
		FROM pay_concepts
		WHERE statement_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to load concepts for statement %s: %w", statementID, err)
	}
	defer rows.Close()

	var concepts []models.PayConcept
	for rows.Next() {
		var row models.PayConcept
		if err := rows.Scan(
			&row.StatementID, &row.LineNo, &row.Code, &row.Description,
			&row.Quantity, &row.UnitValue, &row.Amount, &row.Kind,
		); err != nil {
			return nil, fmt.Errorf("failed to scan concept row: %w", err)
		}
		concepts = append(concepts, row)
	}
	return concepts, rows.Err()
}

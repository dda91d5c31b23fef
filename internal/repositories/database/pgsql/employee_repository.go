package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/mapping"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee reference data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `
	employee_id, legajo_number, first_name, last_name, hire_date,
	rate_card_id, monthly_salary, standard_monthly_hours, health_rate, union_rate,
	is_active, created_at, created_by, last_updated_at, last_updated_by
`

// FindEmployeeByID retrieves a specific employee by its unique identifier.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID, &m.LegajoNumber, &m.FirstName, &m.LastName, &m.HireDate,
		&m.RateCardID, &m.MonthlySalary, &m.StandardMonthlyHours, &m.HealthRate, &m.UnionRate,
		&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// ListActiveEmployees retrieves every active employee, ordered by legajo number.
func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE ORDER BY legajo_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(
			&m.EmployeeID, &m.LegajoNumber, &m.FirstName, &m.LastName, &m.HireDate,
			&m.RateCardID, &m.MonthlySalary, &m.StandardMonthlyHours, &m.HealthRate, &m.UnionRate,
			&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(m))
	}
	return employees, rows.Err()
}

// SaveEmployee persists a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.LegajoNumber, m.FirstName, m.LastName, m.HireDate,
		m.RateCardID, m.MonthlySalary, m.StandardMonthlyHours, m.HealthRate, m.UnionRate,
		m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: legajo number %d already exists", apperrors.ErrDuplicate, m.LegajoNumber)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// UpdateEmployee updates an existing employee's mutable fields.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3,
			rate_card_id = $4, monthly_salary = $5, standard_monthly_hours = $6,
			health_rate = $7, union_rate = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName,
		m.RateCardID, m.MonthlySalary, m.StandardMonthlyHours,
		m.HealthRate, m.UnionRate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateEmployee marks an employee as inactive.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string) error {
	query := `
		UPDATE employees SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

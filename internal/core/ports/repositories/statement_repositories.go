package repositories

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// StatementReader defines read operations for pay statements
type StatementReader interface {
	// FindStatementByID retrieves a statement with its concept lists.
	FindStatementByID(ctx context.Context, statementID string) (*domain.PayStatement, error)

	// FindLatestStatement retrieves the most recent statement for an employee
	// and period, or ErrNotFound if none was ever computed.
	FindLatestStatement(ctx context.Context, employeeID string, period domain.Period) (*domain.PayStatement, error)

	// ListStatementsByPeriod retrieves the latest statement of every employee
	// for a period, ordered by legajo number.
	ListStatementsByPeriod(ctx context.Context, period domain.Period) ([]domain.PayStatement, error)
}

// StatementWriter defines write operations for pay statements
type StatementWriter interface {
	// SaveStatement persists a statement and all its concepts within one
	// database transaction; either the full statement lands or none of it.
	SaveStatement(ctx context.Context, statement domain.PayStatement) error
}

// StatementRepositoryFacade combines all statement repository interfaces
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}

// StatementRepositoryWithTx extends StatementRepositoryFacade with transaction capabilities
type StatementRepositoryWithTx interface {
	StatementRepositoryFacade
	TransactionManager
}

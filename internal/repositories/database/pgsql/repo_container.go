package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		RateCardRepo:   newPgxRateCardRepository(dbPool),
		AttendanceRepo: newPgxAttendanceRepository(dbPool),
		StatementRepo:  newPgxStatementRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
	}
}

package services_test

import (
	"context"
	"testing"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

var _ portsrepo.StatementRepositoryWithTx = (*MockStatementRepository)(nil)

func (m *MockStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.PayStatement, error) {
	args := m.Called(ctx, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayStatement), args.Error(1)
}

func (m *MockStatementRepository) FindLatestStatement(ctx context.Context, employeeID string, period domain.Period) (*domain.PayStatement, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayStatement), args.Error(1)
}

func (m *MockStatementRepository) ListStatementsByPeriod(ctx context.Context, period domain.Period) ([]domain.PayStatement, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayStatement), args.Error(1)
}

func (m *MockStatementRepository) SaveStatement(ctx context.Context, statement domain.PayStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockStatementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStatementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLatestEntryForPeriod(ctx context.Context, period domain.Period) (*domain.JournalEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func testChart() domain.ChartOfAccounts {
	return domain.ChartOfAccounts{
		WagesExpense:           domain.LedgerAccount{Code: "641000", Description: "Sueldos y jornales"},
		NonRemunerativeExpense: domain.LedgerAccount{Code: "641100", Description: "Asignaciones no remunerativas"},
		EmployerChargesExpense: domain.LedgerAccount{Code: "642000", Description: "Cargas sociales"},
		WithholdingsPayable:    domain.LedgerAccount{Code: "248000", Description: "Retenciones a depositar"},
		WagesPayable:           domain.LedgerAccount{Code: "246000", Description: "Sueldos a pagar"},
		EmployerChargesPayable: domain.LedgerAccount{Code: "248100", Description: "Cargas sociales a depositar"},
		EmployerChargeRate:     decimal.RequireFromString("0.18"),
	}
}

func finalStatement(remunerative, nonRemunerative, deductions string) domain.PayStatement {
	r := decimal.RequireFromString(remunerative)
	nr := decimal.RequireFromString(nonRemunerative)
	d := decimal.RequireFromString(deductions)
	return domain.PayStatement{
		StatementID:          "st-1",
		EmployeeID:           "emp-1",
		Period:               testPeriod(),
		Status:               domain.StatementFinal,
		TotalRemunerative:    r,
		TotalNonRemunerative: nr,
		TotalDeductions:      d,
		Net:                  r.Add(nr).Sub(d),
	}
}

func TestBuildEntryForPeriod(t *testing.T) {
	ctx := context.Background()
	mockStatements := new(MockStatementRepository)
	mockJournal := new(MockJournalRepository)
	svc := services.NewLedgerService(mockStatements, mockJournal, testChart())

	statements := []domain.PayStatement{
		finalStatement("100000", "5000", "19500"),
	}
	mockStatements.On("ListStatementsByPeriod", ctx, testPeriod()).Return(statements, nil)

	var saved domain.JournalEntry
	mockJournal.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.JournalEntry) }).
		Return(nil)

	entry, err := svc.BuildEntryForPeriod(ctx, testPeriod(), "user-1")
	require.NoError(t, err)

	require.Len(t, entry.Postings, 6)
	assert.True(t, entry.Balanced())
	assert.Equal(t, "123000.00", entry.TotalDebit.StringFixed(2)) // 100000 + 5000 + 18000

	// Fixed posting order: expenses first, payables after.
	assert.Equal(t, "641000", entry.Postings[0].AccountCode)
	assert.Equal(t, "100000.00", entry.Postings[0].Debit.StringFixed(2))
	assert.Equal(t, "641100", entry.Postings[1].AccountCode)
	assert.Equal(t, "5000.00", entry.Postings[1].Debit.StringFixed(2))
	assert.Equal(t, "642000", entry.Postings[2].AccountCode)
	assert.Equal(t, "18000.00", entry.Postings[2].Debit.StringFixed(2)) // 100000 x 0.18
	assert.Equal(t, "248000", entry.Postings[3].AccountCode)
	assert.Equal(t, "19500.00", entry.Postings[3].Credit.StringFixed(2))
	assert.Equal(t, "246000", entry.Postings[4].AccountCode)
	assert.Equal(t, "85500.00", entry.Postings[4].Credit.StringFixed(2))
	assert.Equal(t, "248100", entry.Postings[5].AccountCode)
	assert.Equal(t, "18000.00", entry.Postings[5].Credit.StringFixed(2))

	assert.Equal(t, "Payroll accrual 2025-06", entry.Description)
	assert.Equal(t, *entry, saved)
	mockJournal.AssertExpectations(t)
}

func TestBuildEntryForPeriod_OmitsZeroNonRemunerative(t *testing.T) {
	ctx := context.Background()
	mockStatements := new(MockStatementRepository)
	mockJournal := new(MockJournalRepository)
	svc := services.NewLedgerService(mockStatements, mockJournal, testChart())

	statements := []domain.PayStatement{
		finalStatement("100000", "0", "19500"),
	}
	mockStatements.On("ListStatementsByPeriod", ctx, testPeriod()).Return(statements, nil)
	mockJournal.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil)

	entry, err := svc.BuildEntryForPeriod(ctx, testPeriod(), "user-1")
	require.NoError(t, err)

	require.Len(t, entry.Postings, 5)
	for _, p := range entry.Postings {
		assert.NotEqual(t, "641100", p.AccountCode)
	}
	assert.True(t, entry.Balanced())
}

func TestBuildEntryForPeriod_DraftsAreIgnored(t *testing.T) {
	ctx := context.Background()
	mockStatements := new(MockStatementRepository)
	mockJournal := new(MockJournalRepository)
	svc := services.NewLedgerService(mockStatements, mockJournal, testChart())

	draft := finalStatement("999999", "0", "0")
	draft.Status = domain.StatementDraft
	statements := []domain.PayStatement{
		draft,
		finalStatement("100000", "0", "19500"),
	}
	mockStatements.On("ListStatementsByPeriod", ctx, testPeriod()).Return(statements, nil)
	mockJournal.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil)

	entry, err := svc.BuildEntryForPeriod(ctx, testPeriod(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "100000.00", entry.Postings[0].Debit.StringFixed(2))
}

func TestBuildEntryForPeriod_NoFinalStatements(t *testing.T) {
	ctx := context.Background()
	mockStatements := new(MockStatementRepository)
	mockJournal := new(MockJournalRepository)
	svc := services.NewLedgerService(mockStatements, mockJournal, testChart())

	draft := finalStatement("100000", "0", "19500")
	draft.Status = domain.StatementDraft
	mockStatements.On("ListStatementsByPeriod", ctx, testPeriod()).Return([]domain.PayStatement{draft}, nil)

	_, err := svc.BuildEntryForPeriod(ctx, testPeriod(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrMissingInputData)
	mockJournal.AssertNotCalled(t, "SaveEntry")
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/accounting"
)

// ledgerService maps a period's finalized payroll onto one balanced
// double-entry journal entry.
type ledgerService struct {
	statementRepo portsrepo.StatementRepositoryFacade
	journalRepo   portsrepo.JournalRepositoryWithTx
	chart         domain.ChartOfAccounts
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(statementRepo portsrepo.StatementRepositoryFacade, journalRepo portsrepo.JournalRepositoryWithTx, chart domain.ChartOfAccounts) portssvc.LedgerSvcFacade {
	return &ledgerService{
		statementRepo: statementRepo,
		journalRepo:   journalRepo,
		chart:         chart,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// BuildEntryForPeriod implements portssvc.LedgerGeneratorSvc.
//
// The entry shape is fixed. Debits: wages expense (total remunerative),
// non-remunerative allowances expense (omitted at zero), employer charges
// expense. Credits: withholdings payable (total deductions), wages payable
// (total net), employer charges payable. Only final statements feed the
// entry; drafts are previews and never reach the ledger.
func (s *ledgerService) BuildEntryForPeriod(ctx context.Context, period domain.Period, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	statements, err := s.statementRepo.ListStatementsByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements for period %s: %w", period.String(), err)
	}

	totalRemunerative := decimal.Zero
	totalNonRemunerative := decimal.Zero
	totalDeductions := decimal.Zero
	totalNet := decimal.Zero
	finalCount := 0
	for _, st := range statements {
		if st.Status != domain.StatementFinal {
			continue
		}
		totalRemunerative = totalRemunerative.Add(st.TotalRemunerative)
		totalNonRemunerative = totalNonRemunerative.Add(st.TotalNonRemunerative)
		totalDeductions = totalDeductions.Add(st.TotalDeductions)
		totalNet = totalNet.Add(st.Net)
		finalCount++
	}
	if finalCount == 0 {
		return nil, fmt.Errorf("%w: no final statements for period %s", apperrors.ErrMissingInputData, period.String())
	}

	employerCharges := totalRemunerative.Mul(s.chart.EmployerChargeRate).Round(2)

	postings := []domain.Posting{
		debitPosting(s.chart.WagesExpense, totalRemunerative),
	}
	if totalNonRemunerative.IsPositive() {
		postings = append(postings, debitPosting(s.chart.NonRemunerativeExpense, totalNonRemunerative))
	}
	postings = append(postings,
		debitPosting(s.chart.EmployerChargesExpense, employerCharges),
		creditPosting(s.chart.WithholdingsPayable, totalDeductions),
		creditPosting(s.chart.WagesPayable, totalNet),
		creditPosting(s.chart.EmployerChargesPayable, employerCharges),
	)

	totalDebit, totalCredit, err := accounting.ValidatePostings(postings)
	if err != nil {
		// Fail closed. An unbalanced entry is a computation bug, not a
		// recoverable input problem, and must never be persisted or exported.
		logger.Error("journal entry failed balance validation",
			slog.String("period", period.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		Period:      period,
		EntryDate:   period.End().Truncate(24 * time.Hour),
		Description: fmt.Sprintf("Payroll accrual %s", period.String()),
		Postings:    postings,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("journal entry generated",
		slog.String("period", period.String()),
		slog.Int("statements", finalCount),
		slog.String("total_debit", totalDebit.StringFixed(2)))
	return &entry, nil
}

// GetEntryByID implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// GetLatestEntryForPeriod implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetLatestEntryForPeriod(ctx context.Context, period domain.Period) (*domain.JournalEntry, error) {
	return s.journalRepo.FindLatestEntryForPeriod(ctx, period)
}

func debitPosting(account domain.LedgerAccount, amount decimal.Decimal) domain.Posting {
	return domain.Posting{
		AccountCode: account.Code,
		Description: account.Description,
		Debit:       amount.Round(2),
		Credit:      decimal.Zero,
	}
}

func creditPosting(account domain.LedgerAccount, amount decimal.Decimal) domain.Posting {
	return domain.Posting{
		AccountCode: account.Code,
		Description: account.Description,
		Debit:       decimal.Zero,
		Credit:      amount.Round(2),
	}
}

package services

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// LedgerGeneratorSvc maps pay statements onto balanced journal entries.
type LedgerGeneratorSvc interface {
	// BuildEntryForPeriod aggregates the period's final statements into one
	// journal entry with the fixed posting order, validates the debit/credit
	// balance and persists it. Fails closed with apperrors.ErrUnbalancedEntry.
	BuildEntryForPeriod(ctx context.Context, period domain.Period, creatorUserID string) (*domain.JournalEntry, error)
}

// LedgerReaderSvc defines read operations for journal entries
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its postings.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// GetLatestEntryForPeriod retrieves the newest entry for a period.
	GetLatestEntryForPeriod(ctx context.Context, period domain.Period) (*domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerGeneratorSvc
	LedgerReaderSvc
}

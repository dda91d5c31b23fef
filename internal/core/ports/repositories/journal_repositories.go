package repositories

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// JournalEntryReader defines read operations for accounting journal entries
type JournalEntryReader interface {
	// FindEntryByID retrieves a journal entry with its postings.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLatestEntryForPeriod retrieves the most recent entry generated for a
	// period, or ErrNotFound if none exists.
	FindLatestEntryForPeriod(ctx context.Context, period domain.Period) (*domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for accounting journal entries
type JournalEntryWriter interface {
	// SaveEntry persists an entry and its postings within one database
	// transaction, preserving posting order.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}

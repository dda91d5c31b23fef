package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and postings.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const entryColumns = `
	entry_id, period, entry_date, description, total_debit, total_credit,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveEntry persists an entry and its postings within one database
// transaction, preserving posting order.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID, m.Period, m.EntryDate, m.Description, m.TotalDebit, m.TotalCredit,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	postingQuery := `
		INSERT INTO journal_postings (entry_id, line_no, account_code, description, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	postingRows := mapping.ToModelPostings(entry)
	for _, row := range postingRows {
		batch.Queue(postingQuery, row.EntryID, row.LineNo, row.AccountCode, row.Description, row.Debit, row.Credit)
	}
	results := tx.SendBatch(ctx, batch)
	for range postingRows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert postings for entry %s: %w", m.EntryID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close posting batch for entry %s: %w", m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry with its postings.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID, &m.Period, &m.EntryDate, &m.Description, &m.TotalDebit, &m.TotalCredit,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	postings, err := r.loadPostings(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry, err := mapping.ToDomainJournalEntry(m, postings)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindLatestEntryForPeriod retrieves the most recent entry generated for a period.
func (r *PgxJournalRepository) FindLatestEntryForPeriod(ctx context.Context, period domain.Period) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id FROM journal_entries
		WHERE period = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var entryID string
	err := r.Pool.QueryRow(ctx, query, period.String()).Scan(&entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest entry for period %s: %w", period.String(), err)
	}
	return r.FindEntryByID(ctx, entryID)
}

func (r *PgxJournalRepository) loadPostings(ctx context.Context, entryID string) ([]models.Posting, error) {
	query := `
		SELECT entry_id, line_no, account_code, description, debit, credit
		FROM journal_postings
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load postings for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var postings []models.Posting
	for rows.Next() {
		var row models.Posting
		if err := rows.Scan(&row.EntryID, &row.LineNo, &row.AccountCode, &row.Description, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan posting row: %w", err)
		}
		postings = append(postings, row)
	}
	return postings, rows.Err()
}

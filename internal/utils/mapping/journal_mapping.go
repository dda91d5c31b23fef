package mapping

import (
	"fmt"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its model row.
// Postings are mapped separately with ToModelPostings.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		Period:      d.Period.String(),
		EntryDate:   d.EntryDate,
		Description: d.Description,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPostings converts the entry's postings into ordered rows.
func ToModelPostings(d domain.JournalEntry) []models.Posting {
	rows := make([]models.Posting, len(d.Postings))
	for i, p := range d.Postings {
		rows[i] = models.Posting{
			EntryID:     d.EntryID,
			LineNo:      i + 1,
			AccountCode: p.AccountCode,
			Description: p.Description,
			Debit:       p.Debit,
			Credit:      p.Credit,
		}
	}
	return rows
}

// ToDomainJournalEntry rebuilds a domain JournalEntry from its row and
// ordered posting rows.
func ToDomainJournalEntry(m models.JournalEntry, postings []models.Posting) (domain.JournalEntry, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("journal entry %s: %w", m.EntryID, err)
	}

	entry := domain.JournalEntry{
		EntryID:     m.EntryID,
		Period:      period,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Postings:    make([]domain.Posting, len(postings)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for i, row := range postings {
		entry.Postings[i] = domain.Posting{
			AccountCode: row.AccountCode,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	return entry, nil
}

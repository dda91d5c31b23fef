package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	Period      string          `json:"period"` // YYYY-MM
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	AuditFields
}

// Posting mirrors the journal_postings table. LineNo preserves the fixed
// posting order of the entry.
type Posting struct {
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

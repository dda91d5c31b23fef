package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is one debit-or-credit line of a journal entry.
// Exactly one of Debit and Credit is nonzero.
type Posting struct {
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntry is a balanced set of postings for one payroll period.
// sum(Debit) == sum(Credit) holds to the cent for every entry the core emits;
// an unbalanced entry is never constructed, let alone exported.
type JournalEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (e.g., UUID)
	Period      Period          `json:"period"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Postings    []Posting       `json:"postings"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	AuditFields
}

// Balanced reports whether total debits equal total credits to the cent.
func (e JournalEntry) Balanced() bool {
	return e.TotalDebit.Equal(e.TotalCredit)
}

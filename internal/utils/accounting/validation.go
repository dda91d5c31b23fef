package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// ValidatePostings checks the double-entry invariants of a posting list and
// returns the debit and credit totals. It is shared by the ledger generator
// and the export layer so nothing unbalanced can be persisted or serialized.
func ValidatePostings(postings []domain.Posting) (totalDebit, totalCredit decimal.Decimal, err error) {
	if len(postings) < 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: entry must have at least two postings", apperrors.ErrUnbalancedEntry)
	}

	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, p := range postings {
		if p.Debit.IsNegative() || p.Credit.IsNegative() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: negative amount on account %s", apperrors.ErrUnbalancedEntry, p.AccountCode)
		}
		if p.Debit.IsPositive() == p.Credit.IsPositive() {
			// Either both sides set or both zero.
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: account %s must carry exactly one of debit or credit", apperrors.ErrUnbalancedEntry, p.AccountCode)
		}
		totalDebit = totalDebit.Add(p.Debit)
		totalCredit = totalCredit.Add(p.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: debits %s != credits %s",
			apperrors.ErrUnbalancedEntry, totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}
	return totalDebit, totalCredit, nil
}

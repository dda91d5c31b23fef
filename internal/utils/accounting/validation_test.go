package accounting_test

import (
	"testing"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posting(account string, debit, credit string) domain.Posting {
	return domain.Posting{
		AccountCode: account,
		Description: account,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func TestValidatePostings_Balanced(t *testing.T) {
	totalDebit, totalCredit, err := accounting.ValidatePostings([]domain.Posting{
		posting("641000", "100000.00", "0"),
		posting("642000", "18000.00", "0"),
		posting("246000", "0", "100000.00"),
		posting("248100", "0", "18000.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "118000.00", totalDebit.StringFixed(2))
	assert.Equal(t, "118000.00", totalCredit.StringFixed(2))
}

func TestValidatePostings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		postings []domain.Posting
	}{
		{
			name: "fewer than two postings",
			postings: []domain.Posting{
				posting("641000", "100.00", "0"),
			},
		},
		{
			name: "negative amount",
			postings: []domain.Posting{
				posting("641000", "-100.00", "0"),
				posting("246000", "0", "-100.00"),
			},
		},
		{
			name: "posting with both sides set",
			postings: []domain.Posting{
				posting("641000", "100.00", "100.00"),
				posting("246000", "0", "0"),
			},
		},
		{
			name: "posting with neither side set",
			postings: []domain.Posting{
				posting("641000", "100.00", "0"),
				posting("246000", "0", "0"),
			},
		},
		{
			name: "off by one cent",
			postings: []domain.Posting{
				posting("641000", "100.00", "0"),
				posting("246000", "0", "99.99"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := accounting.ValidatePostings(tt.postings)
			assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
		})
	}
}

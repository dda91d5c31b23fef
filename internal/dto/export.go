package dto

import "github.com/shopspring/decimal"

// ParsedPosting is one account/debit/credit triple recovered from a delimited
// export. Description whitespace is not guaranteed to survive the round trip;
// amounts are.
type ParsedPosting struct {
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// BuildJournalEntryRequest defines the payload for generating the accounting
// entry of a period.
type BuildJournalEntryRequest struct {
	Period string `json:"period" binding:"required,payperiod"`
}

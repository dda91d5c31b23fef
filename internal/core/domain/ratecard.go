package domain

import "github.com/shopspring/decimal"

// RateCard is the collective-agreement rate schedule applicable to an employee.
// Cards are immutable for the duration of a pay period; the core only reads them.
type RateCard struct {
	RateCardID           string          `json:"rateCardID"` // Primary Key (e.g., UUID)
	Name                 string          `json:"name"`       // Agreement name printed on the payslip
	HourlyRate           decimal.Decimal `json:"hourlyRate"`
	StandardMonthlyHours decimal.Decimal `json:"standardMonthlyHours"`
	OvertimeTier1Rate    decimal.Decimal `json:"overtimeTier1Rate"` // Multiplier, commonly 1.5
	OvertimeTier2Rate    decimal.Decimal `json:"overtimeTier2Rate"` // Multiplier, commonly 2.0
	IsActive             bool            `json:"isActive"`
	AuditFields
}

// Fallback reports whether this card was assembled from employee overrides
// rather than looked up from reference data.
func (rc RateCard) Fallback() bool {
	return rc.RateCardID == ""
}

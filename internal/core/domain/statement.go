package domain

import "github.com/shopspring/decimal"

// StatementStatus indicates whether a statement is a preview or a final run result.
type StatementStatus string

const (
	StatementDraft StatementStatus = "DRAFT"
	StatementFinal StatementStatus = "FINAL"
)

// PayStatement is the computed pay of one employee for one period.
// It is immutable once produced: re-running the same period creates a new
// statement and the caller decides whether to supersede the earlier one.
type PayStatement struct {
	StatementID     string          `json:"statementID"` // Primary Key (e.g., UUID)
	EmployeeID      string          `json:"employeeID"`
	LegajoNumber    int             `json:"legajoNumber"`
	EmployeeName    string          `json:"employeeName"`
	Period          Period          `json:"period"`
	RateCardName    string          `json:"rateCardName"`
	Status          StatementStatus `json:"status"`
	Remunerative    []PayConcept    `json:"remunerative"`
	NonRemunerative []PayConcept    `json:"nonRemunerative"`
	Deductions      []PayConcept    `json:"deductions"`

	TotalRemunerative    decimal.Decimal `json:"totalRemunerative"`
	TotalNonRemunerative decimal.Decimal `json:"totalNonRemunerative"`
	TotalDeductions      decimal.Decimal `json:"totalDeductions"`
	Net                  decimal.Decimal `json:"net"`

	NormalHours        decimal.Decimal `json:"normalHours"`
	OvertimeTier1Hours decimal.Decimal `json:"overtimeTier1Hours"`
	OvertimeTier2Hours decimal.Decimal `json:"overtimeTier2Hours"`
	DaysWorked         int             `json:"daysWorked"`
	AnomalousDays      []string        `json:"anomalousDays"` // Non-empty only on draft statements

	AuditFields
}

// Balanced verifies the statement identity net = remunerative + nonRemunerative − deductions.
func (s PayStatement) Balanced() bool {
	expected := s.TotalRemunerative.Add(s.TotalNonRemunerative).Sub(s.TotalDeductions)
	return s.Net.Equal(expected)
}

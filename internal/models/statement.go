package models

import "github.com/shopspring/decimal"

// PayStatement mirrors the pay_statements table. Concept rows live in
// pay_concepts and are loaded separately.
type PayStatement struct {
	StatementID  string `json:"statementID"`
	EmployeeID   string `json:"employeeID"`
	LegajoNumber int    `json:"legajoNumber"`
	EmployeeName string `json:"employeeName"`
	Period       string `json:"period"` // YYYY-MM
	RateCardName string `json:"rateCardName"`
	Status       string `json:"status"`

	TotalRemunerative    decimal.Decimal `json:"totalRemunerative"`
	TotalNonRemunerative decimal.Decimal `json:"totalNonRemunerative"`
	TotalDeductions      decimal.Decimal `json:"totalDeductions"`
	Net                  decimal.Decimal `json:"net"`

	NormalHours        decimal.Decimal `json:"normalHours"`
	OvertimeTier1Hours decimal.Decimal `json:"overtimeTier1Hours"`
	OvertimeTier2Hours decimal.Decimal `json:"overtimeTier2Hours"`
	DaysWorked         int             `json:"daysWorked"`
	AnomalousDays      []string        `json:"anomalousDays"`

	AuditFields
}

// PayConcept mirrors the pay_concepts table. LineNo preserves the fixed
// computation order of the statement.
type PayConcept struct {
	StatementID string          `json:"statementID"`
	LineNo      int             `json:"lineNo"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
}

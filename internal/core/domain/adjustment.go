package domain

import "github.com/shopspring/decimal"

// Adjustment is a manually entered extra concept for one employee and period,
// merged into the statement by the computation engine. Deductions are not
// adjustable this way; only earnings, remunerative or not.
type Adjustment struct {
	AdjustmentID string          `json:"adjustmentID"` // Primary Key (e.g., UUID)
	EmployeeID   string          `json:"employeeID"`
	Period       Period          `json:"period"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         ConceptKind     `json:"kind"` // REMUNERATIVE or NON_REMUNERATIVE
	AuditFields
}

// Concept renders the adjustment as a statement line item.
func (a Adjustment) Concept() PayConcept {
	return PayConcept{
		Code:        a.Code,
		Description: a.Description,
		Quantity:    decimal.NewFromInt(1),
		UnitValue:   a.Amount,
		Amount:      a.Amount.Round(2),
		Kind:        a.Kind,
	}
}

package domain

import "github.com/shopspring/decimal"

// ConceptKind partitions pay-statement line items into the three immutable
// categories of the statement: remunerative concepts feed the social-security
// contribution base, non-remunerative ones do not, deductions are withheld.
type ConceptKind string

const (
	Remunerative    ConceptKind = "REMUNERATIVE"
	NonRemunerative ConceptKind = "NON_REMUNERATIVE"
	Deduction       ConceptKind = "DEDUCTION"
)

// Standard concept codes emitted by the computation engine. Adjustment concepts
// entered through the API carry their own codes.
const (
	ConceptBaseSalary      = "100"
	ConceptOvertimeTier1   = "110"
	ConceptOvertimeTier2   = "120"
	ConceptSeniority       = "130"
	ConceptAttendanceBonus = "140"
	ConceptRetirement      = "200"
	ConceptWelfare         = "210"
	ConceptHealth          = "220"
	ConceptUnionDues       = "230"
)

// PayConcept is a single line item of a pay statement.
// Amount is always Quantity × UnitValue rounded to cent precision.
type PayConcept struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`  // Hours, years, or 1 for flat concepts
	UnitValue   decimal.Decimal `json:"unitValue"` // Rate applied to the quantity
	Amount      decimal.Decimal `json:"amount"`
	Kind        ConceptKind     `json:"kind"`
}

// SumConcepts adds the amounts of a concept list to cent precision.
func SumConcepts(concepts []PayConcept) decimal.Decimal {
	total := decimal.Zero
	for _, c := range concepts {
		total = total.Add(c.Amount)
	}
	return total
}

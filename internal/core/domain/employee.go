package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is reference data owned by HR administration.
// The payroll core reads it, never mutates it.
type Employee struct {
	EmployeeID           string           `json:"employeeID"`   // Primary Key (e.g., UUID)
	LegajoNumber         int              `json:"legajoNumber"` // Badge / file number printed on the payslip
	FirstName            string           `json:"firstName"`
	LastName             string           `json:"lastName"`
	HireDate             time.Time        `json:"hireDate"`
	RateCardID           *string          `json:"rateCardID"`           // Nullable FK -> rate_cards.rate_card_id
	MonthlySalary        *decimal.Decimal `json:"monthlySalary"`        // Fixed monthly salary override (instead of hourly)
	StandardMonthlyHours *decimal.Decimal `json:"standardMonthlyHours"` // Override of the rate card's standard hours
	HealthRate           *decimal.Decimal `json:"healthRate"`           // Health-insurance percentage override (0.03 = 3%)
	UnionRate            *decimal.Decimal `json:"unionRate"`            // Union-dues percentage override
	IsActive             bool             `json:"isActive"`
	AuditFields
}

// FullName returns "Last, First" as printed on payroll documents.
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}

// YearsOfService computes seniority from hire date to the given period end,
// truncated to whole years. Negative spans (hired after the period) yield zero.
func (e Employee) YearsOfService(p Period) int {
	end := p.End()
	if e.HireDate.After(end) {
		return 0
	}
	years := end.Year() - e.HireDate.Year()
	anniversary := e.HireDate.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

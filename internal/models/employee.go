package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee mirrors the employees table.
type Employee struct {
	EmployeeID           string           `json:"employeeID"`
	LegajoNumber         int              `json:"legajoNumber"`
	FirstName            string           `json:"firstName"`
	LastName             string           `json:"lastName"`
	HireDate             time.Time        `json:"hireDate"`
	RateCardID           *string          `json:"rateCardID"`
	MonthlySalary        *decimal.Decimal `json:"monthlySalary"`
	StandardMonthlyHours *decimal.Decimal `json:"standardMonthlyHours"`
	HealthRate           *decimal.Decimal `json:"healthRate"`
	UnionRate            *decimal.Decimal `json:"unionRate"`
	IsActive             bool             `json:"isActive"`
	AuditFields
}

// RateCard mirrors the rate_cards table.
type RateCard struct {
	RateCardID           string          `json:"rateCardID"`
	Name                 string          `json:"name"`
	HourlyRate           decimal.Decimal `json:"hourlyRate"`
	StandardMonthlyHours decimal.Decimal `json:"standardMonthlyHours"`
	OvertimeTier1Rate    decimal.Decimal `json:"overtimeTier1Rate"`
	OvertimeTier2Rate    decimal.Decimal `json:"overtimeTier2Rate"`
	IsActive             bool            `json:"isActive"`
	AuditFields
}

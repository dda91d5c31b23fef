package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest defines the payload for creating an employee.
type CreateEmployeeRequest struct {
	LegajoNumber         int              `json:"legajoNumber" binding:"required,gt=0"`
	FirstName            string           `json:"firstName" binding:"required"`
	LastName             string           `json:"lastName" binding:"required"`
	HireDate             string           `json:"hireDate" binding:"required,datetime=2006-01-02"`
	RateCardID           *string          `json:"rateCardID"`
	MonthlySalary        *decimal.Decimal `json:"monthlySalary"`
	StandardMonthlyHours *decimal.Decimal `json:"standardMonthlyHours"`
	HealthRate           *decimal.Decimal `json:"healthRate"`
	UnionRate            *decimal.Decimal `json:"unionRate"`
}

// UpdateEmployeeRequest defines the payload for updating employee overrides.
// Nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName            *string          `json:"firstName"`
	LastName             *string          `json:"lastName"`
	RateCardID           *string          `json:"rateCardID"`
	MonthlySalary        *decimal.Decimal `json:"monthlySalary"`
	StandardMonthlyHours *decimal.Decimal `json:"standardMonthlyHours"`
	HealthRate           *decimal.Decimal `json:"healthRate"`
	UnionRate            *decimal.Decimal `json:"unionRate"`
}

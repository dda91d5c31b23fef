package domain

import "github.com/shopspring/decimal"

// PayPolicy carries every rate and toggle the computation engine applies.
// All percentages are fractions (0.11 = 11%). The engine takes this as an
// explicit input; none of these values are hard-coded anywhere in the core.
type PayPolicy struct {
	SeniorityRatePerYear decimal.Decimal `json:"seniorityRatePerYear"` // Of base salary, per whole year of service
	AttendanceBonusRate  decimal.Decimal `json:"attendanceBonusRate"`  // Of base salary; zeroed externally on unexcused absence
	RetirementRate       decimal.Decimal `json:"retirementRate"`       // Of total remunerative
	WelfareRate          decimal.Decimal `json:"welfareRate"`          // Statutory welfare contribution, of total remunerative
	DefaultHealthRate    decimal.Decimal `json:"defaultHealthRate"`    // Used when the employee has no override
	DefaultUnionRate     decimal.Decimal `json:"defaultUnionRate"`     // Used when the employee has no override

	OvertimeTier1MonthlyCap decimal.Decimal `json:"overtimeTier1MonthlyCap"` // Hours; excess overtime falls into tier 2

	// Overtime multipliers applied when a fallback card is assembled from
	// employee overrides, which carry no agreement of their own.
	FallbackOvertimeTier1Rate decimal.Decimal `json:"fallbackOvertimeTier1Rate"`
	FallbackOvertimeTier2Rate decimal.Decimal `json:"fallbackOvertimeTier2Rate"`

	// ProrateStandardHours scales standard monthly hours for employees hired
	// mid-period by the fraction of calendar days remaining.
	ProrateStandardHours bool `json:"prorateStandardHours"`
	// FractionalSeniority accrues the seniority bonus by fractional years
	// instead of whole-year truncation.
	FractionalSeniority bool `json:"fractionalSeniority"`
}

// ChartOfAccounts maps pay-statement totals onto ledger account codes.
// The shape of the generated entry is fixed; only codes and descriptions vary
// per deployment.
type ChartOfAccounts struct {
	WagesExpense            LedgerAccount   `json:"wagesExpense"`
	NonRemunerativeExpense  LedgerAccount   `json:"nonRemunerativeExpense"`
	EmployerChargesExpense  LedgerAccount   `json:"employerChargesExpense"`
	WithholdingsPayable     LedgerAccount   `json:"withholdingsPayable"`
	WagesPayable            LedgerAccount   `json:"wagesPayable"`
	EmployerChargesPayable  LedgerAccount   `json:"employerChargesPayable"`
	EmployerChargeRate      decimal.Decimal `json:"employerChargeRate"` // Of total remunerative; distinct from employee deductions
}

// LedgerAccount is an account code plus the description exported with it.
type LedgerAccount struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ExportFieldWidths sets the fixed column widths of the legacy ledger export.
// A value that does not fit its column is an export error, never a silent
// truncation.
type ExportFieldWidths struct {
	Account     int `json:"account"`
	Description int `json:"description"`
	Amount      int `json:"amount"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Punch mirrors the attendance_punches table.
type Punch struct {
	PunchID    string    `json:"punchID"`
	EmployeeID string    `json:"employeeID"`
	Timestamp  time.Time `json:"timestamp"`
	Direction  string    `json:"direction"` // IN or OUT
	AuditFields
}

// Adjustment mirrors the pay_adjustments table.
type Adjustment struct {
	AdjustmentID string          `json:"adjustmentID"`
	EmployeeID   string          `json:"employeeID"`
	Period       string          `json:"period"` // YYYY-MM
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         string          `json:"kind"`
	AuditFields
}

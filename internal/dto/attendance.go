package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PunchInput is a single raw punch in a RecordPunchesRequest.
type PunchInput struct {
	EmployeeID string    `json:"employeeID" binding:"required"`
	Timestamp  time.Time `json:"timestamp" binding:"required"`
	Direction  string    `json:"direction" binding:"required,oneof=IN OUT"`
}

// RecordPunchesRequest defines the payload for ingesting attendance punches.
type RecordPunchesRequest struct {
	Punches []PunchInput `json:"punches" binding:"required,min=1,dive"`
}

// CreateAdjustmentRequest defines the payload for a manual pay adjustment.
type CreateAdjustmentRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Period      string          `json:"period" binding:"required,payperiod"`
	Code        string          `json:"code" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Kind        string          `json:"kind" binding:"required,oneof=REMUNERATIVE NON_REMUNERATIVE"`
}

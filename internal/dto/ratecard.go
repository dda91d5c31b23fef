package dto

import "github.com/shopspring/decimal"

// CreateRateCardRequest defines the payload for creating a rate card.
type CreateRateCardRequest struct {
	Name                 string          `json:"name" binding:"required"`
	HourlyRate           decimal.Decimal `json:"hourlyRate" binding:"required"`
	StandardMonthlyHours decimal.Decimal `json:"standardMonthlyHours" binding:"required"`
	OvertimeTier1Rate    decimal.Decimal `json:"overtimeTier1Rate" binding:"required"`
	OvertimeTier2Rate    decimal.Decimal `json:"overtimeTier2Rate" binding:"required"`
}

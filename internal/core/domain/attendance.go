package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PunchDirection indicates whether a punch records an entry or an exit.
type PunchDirection string

const (
	PunchIn  PunchDirection = "IN"
	PunchOut PunchDirection = "OUT"
)

// Punch is a single raw attendance record sourced from the attendance store.
type Punch struct {
	PunchID    string         `json:"punchID"` // Primary Key (e.g., UUID)
	EmployeeID string         `json:"employeeID"`
	Timestamp  time.Time      `json:"timestamp"`
	Direction  PunchDirection `json:"direction"`
	AuditFields
}

// AttendancePunchSummary is the per-(employee, period) aggregation of punches.
// NormalHours never exceeds the effective standard monthly hours; the excess is
// carried in the overtime tiers instead.
type AttendancePunchSummary struct {
	EmployeeID         string          `json:"employeeID"`
	Period             Period          `json:"period"`
	NormalHours        decimal.Decimal `json:"normalHours"`
	OvertimeTier1Hours decimal.Decimal `json:"overtimeTier1Hours"`
	OvertimeTier2Hours decimal.Decimal `json:"overtimeTier2Hours"`
	DaysWorked         int             `json:"daysWorked"`
	AnomalousDays      []string        `json:"anomalousDays"` // Days (YYYY-MM-DD) excluded from totals
}

// HasAnomalies reports whether any day was excluded for inconsistent punches.
func (s AttendancePunchSummary) HasAnomalies() bool {
	return len(s.AnomalousDays) > 0
}

// TotalHours is the sum of all compensated hour buckets.
func (s AttendancePunchSummary) TotalHours() decimal.Decimal {
	return s.NormalHours.Add(s.OvertimeTier1Hours).Add(s.OvertimeTier2Hours)
}

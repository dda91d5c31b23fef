package domain

import (
	"fmt"
	"time"
)

// Period identifies a single payroll calendar month.
// It is the unit every statement and journal entry is keyed by.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParsePeriod parses a period in "YYYY-MM" form.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q, expected YYYY-MM: %w", value, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns the first instant of the period (UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period at 23:59:59 (UTC).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Second)
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	return p.Start().AddDate(0, 1, -1).Day()
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

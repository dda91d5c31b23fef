package domain_test

import (
	"testing"
	"time"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEmployee_YearsOfService(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.June}

	tests := []struct {
		name     string
		hireDate time.Time
		want     int
	}{
		{
			name:     "five full years",
			hireDate: time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC),
			want:     5,
		},
		{
			name:     "anniversary not yet reached",
			hireDate: time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC),
			want:     4,
		},
		{
			name:     "anniversary on the last day of the period",
			hireDate: time.Date(2020, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:     5,
		},
		{
			name:     "hired this year",
			hireDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "hired after the period",
			hireDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee := domain.Employee{HireDate: tt.hireDate}
			assert.Equal(t, tt.want, employee.YearsOfService(period))
		})
	}
}

func TestEmployee_FullName(t *testing.T) {
	employee := domain.Employee{FirstName: "Ana", LastName: "Gomez"}
	assert.Equal(t, "Gomez, Ana", employee.FullName())
}

package mapping

import (
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:           d.EmployeeID,
		LegajoNumber:         d.LegajoNumber,
		FirstName:            d.FirstName,
		LastName:             d.LastName,
		HireDate:             d.HireDate,
		RateCardID:           d.RateCardID,
		MonthlySalary:        d.MonthlySalary,
		StandardMonthlyHours: d.StandardMonthlyHours,
		HealthRate:           d.HealthRate,
		UnionRate:            d.UnionRate,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:           m.EmployeeID,
		LegajoNumber:         m.LegajoNumber,
		FirstName:            m.FirstName,
		LastName:             m.LastName,
		HireDate:             m.HireDate,
		RateCardID:           m.RateCardID,
		MonthlySalary:        m.MonthlySalary,
		StandardMonthlyHours: m.StandardMonthlyHours,
		HealthRate:           m.HealthRate,
		UnionRate:            m.UnionRate,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRateCard converts a domain RateCard to a model RateCard
func ToModelRateCard(d domain.RateCard) models.RateCard {
	return models.RateCard{
		RateCardID:           d.RateCardID,
		Name:                 d.Name,
		HourlyRate:           d.HourlyRate,
		StandardMonthlyHours: d.StandardMonthlyHours,
		OvertimeTier1Rate:    d.OvertimeTier1Rate,
		OvertimeTier2Rate:    d.OvertimeTier2Rate,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRateCard converts a model RateCard to a domain RateCard
func ToDomainRateCard(m models.RateCard) domain.RateCard {
	return domain.RateCard{
		RateCardID:           m.RateCardID,
		Name:                 m.Name,
		HourlyRate:           m.HourlyRate,
		StandardMonthlyHours: m.StandardMonthlyHours,
		OvertimeTier1Rate:    m.OvertimeTier1Rate,
		OvertimeTier2Rate:    m.OvertimeTier2Rate,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

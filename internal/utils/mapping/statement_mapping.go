package mapping

import (
	"fmt"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
)

// ToModelPayStatement converts a domain PayStatement to its model row.
// Concepts are mapped separately with ToModelPayConcepts.
func ToModelPayStatement(d domain.PayStatement) models.PayStatement {
	return models.PayStatement{
		StatementID:          d.StatementID,
		EmployeeID:           d.EmployeeID,
		LegajoNumber:         d.LegajoNumber,
		EmployeeName:         d.EmployeeName,
		Period:               d.Period.String(),
		RateCardName:         d.RateCardName,
		Status:               string(d.Status),
		TotalRemunerative:    d.TotalRemunerative,
		TotalNonRemunerative: d.TotalNonRemunerative,
		TotalDeductions:      d.TotalDeductions,
		Net:                  d.Net,
		NormalHours:          d.NormalHours,
		OvertimeTier1Hours:   d.OvertimeTier1Hours,
		OvertimeTier2Hours:   d.OvertimeTier2Hours,
		DaysWorked:           d.DaysWorked,
		AnomalousDays:        d.AnomalousDays,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPayConcepts flattens the statement's three concept lists into
// ordered rows. LineNo runs across all three lists so the load order equals
// the computation order.
func ToModelPayConcepts(d domain.PayStatement) []models.PayConcept {
	rows := make([]models.PayConcept, 0, len(d.Remunerative)+len(d.NonRemunerative)+len(d.Deductions))
	lineNo := 0
	appendList := func(concepts []domain.PayConcept) {
		for _, c := range concepts {
			lineNo++
			rows = append(rows, models.PayConcept{
				StatementID: d.StatementID,
				LineNo:      lineNo,
				Code:        c.Code,
				Description: c.Description,
				Quantity:    c.Quantity,
				UnitValue:   c.UnitValue,
				Amount:      c.Amount,
				Kind:        string(c.Kind),
			})
		}
	}
	appendList(d.Remunerative)
	appendList(d.NonRemunerative)
	appendList(d.Deductions)
	return rows
}

// ToDomainPayStatement rebuilds a domain PayStatement from its row and
// ordered concept rows.
func ToDomainPayStatement(m models.PayStatement, concepts []models.PayConcept) (domain.PayStatement, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.PayStatement{}, fmt.Errorf("statement %s: %w", m.StatementID, err)
	}

	statement := domain.PayStatement{
		StatementID:          m.StatementID,
		EmployeeID:           m.EmployeeID,
		LegajoNumber:         m.LegajoNumber,
		EmployeeName:         m.EmployeeName,
		Period:               period,
		RateCardName:         m.RateCardName,
		Status:               domain.StatementStatus(m.Status),
		TotalRemunerative:    m.TotalRemunerative,
		TotalNonRemunerative: m.TotalNonRemunerative,
		TotalDeductions:      m.TotalDeductions,
		Net:                  m.Net,
		NormalHours:          m.NormalHours,
		OvertimeTier1Hours:   m.OvertimeTier1Hours,
		OvertimeTier2Hours:   m.OvertimeTier2Hours,
		DaysWorked:           m.DaysWorked,
		AnomalousDays:        m.AnomalousDays,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}

	for _, row := range concepts {
		concept := domain.PayConcept{
			Code:        row.Code,
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitValue:   row.UnitValue,
			Amount:      row.Amount,
			Kind:        domain.ConceptKind(row.Kind),
		}
		switch concept.Kind {
		case domain.Remunerative:
			statement.Remunerative = append(statement.Remunerative, concept)
		case domain.NonRemunerative:
			statement.NonRemunerative = append(statement.NonRemunerative, concept)
		case domain.Deduction:
			statement.Deductions = append(statement.Deductions, concept)
		default:
			return domain.PayStatement{}, fmt.Errorf("statement %s: unknown concept kind %q", m.StatementID, row.Kind)
		}
	}
	return statement, nil
}

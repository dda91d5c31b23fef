package mapping

import (
	"fmt"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
)

// ToModelPunch converts a domain Punch to a model Punch
func ToModelPunch(d domain.Punch) models.Punch {
	return models.Punch{
		PunchID:     d.PunchID,
		EmployeeID:  d.EmployeeID,
		Timestamp:   d.Timestamp,
		Direction:   string(d.Direction),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPunch converts a model Punch to a domain Punch
func ToDomainPunch(m models.Punch) domain.Punch {
	return domain.Punch{
		PunchID:     m.PunchID,
		EmployeeID:  m.EmployeeID,
		Timestamp:   m.Timestamp,
		Direction:   domain.PunchDirection(m.Direction),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAdjustment converts a domain Adjustment to a model Adjustment
func ToModelAdjustment(d domain.Adjustment) models.Adjustment {
	return models.Adjustment{
		AdjustmentID: d.AdjustmentID,
		EmployeeID:   d.EmployeeID,
		Period:       d.Period.String(),
		Code:         d.Code,
		Description:  d.Description,
		Amount:       d.Amount,
		Kind:         string(d.Kind),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdjustment converts a model Adjustment to a domain Adjustment
func ToDomainAdjustment(m models.Adjustment) (domain.Adjustment, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.Adjustment{}, fmt.Errorf("adjustment %s: %w", m.AdjustmentID, err)
	}
	return domain.Adjustment{
		AdjustmentID: m.AdjustmentID,
		EmployeeID:   m.EmployeeID,
		Period:       period,
		Code:         m.Code,
		Description:  m.Description,
		Amount:       m.Amount,
		Kind:         domain.ConceptKind(m.Kind),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}

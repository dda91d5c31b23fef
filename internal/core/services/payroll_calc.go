package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// StatementInput is everything the computation engine needs to build one pay
// statement. The engine is a pure function of this input: no repository
// access, no clock reads, no side effects.
type StatementInput struct {
	Employee    domain.Employee
	Period      domain.Period
	RateCard    domain.RateCard
	Summary     domain.AttendancePunchSummary
	Adjustments []domain.Adjustment
	Policy      domain.PayPolicy
	Status      domain.StatementStatus

	// AttendanceBonusEligible is externally supplied: any unexcused absence
	// in the period disqualifies the bonus. The engine does not compute it.
	AttendanceBonusEligible bool
}

// EffectiveStandardHours returns the standard monthly hours applicable to an
// employee for a period: the employee override when present, otherwise the
// rate card's, prorated by remaining calendar days for mid-period hires when
// the policy says so.
func EffectiveStandardHours(employee domain.Employee, card domain.RateCard, period domain.Period, policy domain.PayPolicy) decimal.Decimal {
	standard := card.StandardMonthlyHours
	if employee.StandardMonthlyHours != nil && employee.StandardMonthlyHours.IsPositive() {
		standard = *employee.StandardMonthlyHours
	}

	if policy.ProrateStandardHours && period.Contains(employee.HireDate) {
		remaining := period.Days() - employee.HireDate.Day() + 1
		ratio := decimal.NewFromInt(int64(remaining)).Div(decimal.NewFromInt(int64(period.Days())))
		standard = standard.Mul(ratio).Round(2)
	}
	return standard
}

// BuildStatement produces the pay statement of one employee for one period.
//
// The computation order is fixed because later concepts depend on earlier
// totals: base salary, overtime, seniority, attendance bonus, then the total
// remunerative, then each deduction as a percentage of that total. Zero-hour
// overtime produces no line at all, not a zero line. Identical inputs yield
// identical statements.
func BuildStatement(in StatementInput) (domain.PayStatement, error) {
	if in.Summary.EmployeeID != in.Employee.EmployeeID || in.Summary.Period != in.Period {
		return domain.PayStatement{}, fmt.Errorf("%w: attendance summary does not match employee/period", apperrors.ErrMissingInputData)
	}
	if in.Status == domain.StatementFinal && in.Summary.HasAnomalies() {
		return domain.PayStatement{}, fmt.Errorf("%w: employee %s period %s has %d anomalous days",
			apperrors.ErrAnomalousAttendance, in.Employee.EmployeeID, in.Period.String(), len(in.Summary.AnomalousDays))
	}

	hourly := in.RateCard.HourlyRate
	hasFixedSalary := in.Employee.MonthlySalary != nil && in.Employee.MonthlySalary.IsPositive()
	if !hourly.IsPositive() && !hasFixedSalary {
		return domain.PayStatement{}, fmt.Errorf("%w: employee %s has neither an hourly rate nor a fixed salary",
			apperrors.ErrMissingRateData, in.Employee.EmployeeID)
	}

	standardHours := EffectiveStandardHours(in.Employee, in.RateCard, in.Period, in.Policy)

	var remunerative []domain.PayConcept

	// 1. Base salary: standard hours at the hourly rate, or the configured
	// fixed monthly salary. No punches does not mean no pay; absence handling
	// is external policy.
	var base domain.PayConcept
	if hasFixedSalary {
		base = domain.PayConcept{
			Code:        domain.ConceptBaseSalary,
			Description: "Base salary",
			Quantity:    decimalOne,
			UnitValue:   in.Employee.MonthlySalary.Round(2),
			Amount:      in.Employee.MonthlySalary.Round(2),
			Kind:        domain.Remunerative,
		}
	} else {
		base = domain.PayConcept{
			Code:        domain.ConceptBaseSalary,
			Description: "Base salary",
			Quantity:    standardHours,
			UnitValue:   hourly,
			Amount:      standardHours.Mul(hourly).Round(2),
			Kind:        domain.Remunerative,
		}
	}
	remunerative = append(remunerative, base)

	// 2. Overtime, one concept per tier, omitted entirely at zero hours.
	if in.Summary.OvertimeTier1Hours.IsPositive() {
		rate := hourly.Mul(in.RateCard.OvertimeTier1Rate)
		remunerative = append(remunerative, domain.PayConcept{
			Code:        domain.ConceptOvertimeTier1,
			Description: "Overtime " + multiplierLabel(in.RateCard.OvertimeTier1Rate),
			Quantity:    in.Summary.OvertimeTier1Hours,
			UnitValue:   rate.Round(4),
			Amount:      in.Summary.OvertimeTier1Hours.Mul(rate).Round(2),
			Kind:        domain.Remunerative,
		})
	}
	if in.Summary.OvertimeTier2Hours.IsPositive() {
		rate := hourly.Mul(in.RateCard.OvertimeTier2Rate)
		remunerative = append(remunerative, domain.PayConcept{
			Code:        domain.ConceptOvertimeTier2,
			Description: "Overtime " + multiplierLabel(in.RateCard.OvertimeTier2Rate),
			Quantity:    in.Summary.OvertimeTier2Hours,
			UnitValue:   rate.Round(4),
			Amount:      in.Summary.OvertimeTier2Hours.Mul(rate).Round(2),
			Kind:        domain.Remunerative,
		})
	}

	// 3. Seniority bonus on base salary per year of service.
	seniority := seniorityYears(in.Employee, in.Period, in.Policy)
	if seniority.IsPositive() && in.Policy.SeniorityRatePerYear.IsPositive() {
		perYear := base.Amount.Mul(in.Policy.SeniorityRatePerYear)
		remunerative = append(remunerative, domain.PayConcept{
			Code:        domain.ConceptSeniority,
			Description: "Seniority bonus",
			Quantity:    seniority,
			UnitValue:   perYear.Round(4),
			Amount:      perYear.Mul(seniority).Round(2),
			Kind:        domain.Remunerative,
		})
	}

	// 4. Attendance bonus, zeroed externally on unexcused absence.
	if in.AttendanceBonusEligible && in.Policy.AttendanceBonusRate.IsPositive() {
		remunerative = append(remunerative, domain.PayConcept{
			Code:        domain.ConceptAttendanceBonus,
			Description: "Attendance bonus",
			Quantity:    in.Policy.AttendanceBonusRate.Mul(decimalHundred),
			UnitValue:   base.Amount,
			Amount:      base.Amount.Mul(in.Policy.AttendanceBonusRate).Round(2),
			Kind:        domain.Remunerative,
		})
	}

	// Manual adjustments, in entry order, after the computed concepts.
	var nonRemunerative []domain.PayConcept
	for _, adj := range in.Adjustments {
		concept := adj.Concept()
		switch adj.Kind {
		case domain.Remunerative:
			remunerative = append(remunerative, concept)
		case domain.NonRemunerative:
			nonRemunerative = append(nonRemunerative, concept)
		default:
			return domain.PayStatement{}, fmt.Errorf("%w: adjustment %s has kind %s", apperrors.ErrValidation, adj.AdjustmentID, adj.Kind)
		}
	}

	// 5. Total remunerative is the deduction base.
	totalRemunerative := domain.SumConcepts(remunerative)

	// 6. Deductions, each a percentage of the total remunerative.
	healthRate := in.Policy.DefaultHealthRate
	if in.Employee.HealthRate != nil {
		healthRate = *in.Employee.HealthRate
	}
	unionRate := in.Policy.DefaultUnionRate
	if in.Employee.UnionRate != nil {
		unionRate = *in.Employee.UnionRate
	}

	var deductions []domain.PayConcept
	deductions = appendDeduction(deductions, domain.ConceptRetirement, "Retirement contribution", in.Policy.RetirementRate, totalRemunerative)
	deductions = appendDeduction(deductions, domain.ConceptWelfare, "Statutory welfare contribution", in.Policy.WelfareRate, totalRemunerative)
	deductions = appendDeduction(deductions, domain.ConceptHealth, "Health insurance", healthRate, totalRemunerative)
	deductions = appendDeduction(deductions, domain.ConceptUnionDues, "Union dues", unionRate, totalRemunerative)

	totalNonRemunerative := domain.SumConcepts(nonRemunerative)
	totalDeductions := domain.SumConcepts(deductions)

	// 7. Net payable. Every amount above is already rounded to the cent, so
	// the identity holds exactly.
	net := totalRemunerative.Add(totalNonRemunerative).Sub(totalDeductions)

	return domain.PayStatement{
		EmployeeID:           in.Employee.EmployeeID,
		LegajoNumber:         in.Employee.LegajoNumber,
		EmployeeName:         in.Employee.FullName(),
		Period:               in.Period,
		RateCardName:         in.RateCard.Name,
		Status:               in.Status,
		Remunerative:         remunerative,
		NonRemunerative:      nonRemunerative,
		Deductions:           deductions,
		TotalRemunerative:    totalRemunerative,
		TotalNonRemunerative: totalNonRemunerative,
		TotalDeductions:      totalDeductions,
		Net:                  net,
		NormalHours:          in.Summary.NormalHours,
		OvertimeTier1Hours:   in.Summary.OvertimeTier1Hours,
		OvertimeTier2Hours:   in.Summary.OvertimeTier2Hours,
		DaysWorked:           in.Summary.DaysWorked,
		AnomalousDays:        in.Summary.AnomalousDays,
	}, nil
}

// appendDeduction adds a percentage-of-remunerative deduction line, omitting
// zero-rate deductions the same way zero-hour overtime is omitted.
func appendDeduction(deductions []domain.PayConcept, code, description string, rate, totalRemunerative decimal.Decimal) []domain.PayConcept {
	if !rate.IsPositive() {
		return deductions
	}
	return append(deductions, domain.PayConcept{
		Code:        code,
		Description: description,
		Quantity:    rate.Mul(decimalHundred),
		UnitValue:   totalRemunerative,
		Amount:      totalRemunerative.Mul(rate).Round(2),
		Kind:        domain.Deduction,
	})
}

// seniorityYears returns the seniority quantity for the bonus concept: whole
// years truncated by default, or fractional years (in twelfths) when the
// policy enables fractional accrual.
func seniorityYears(employee domain.Employee, period domain.Period, policy domain.PayPolicy) decimal.Decimal {
	whole := employee.YearsOfService(period)
	if !policy.FractionalSeniority {
		return decimal.NewFromInt(int64(whole))
	}

	end := period.End()
	if employee.HireDate.After(end) {
		return decimal.Zero
	}
	months := (end.Year()-employee.HireDate.Year())*12 + int(end.Month()) - int(employee.HireDate.Month())
	if end.Day() < employee.HireDate.Day() {
		months--
	}
	if months < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12)).Round(2)
}

// multiplierLabel renders an overtime multiplier as the conventional
// percentage label, e.g. 1.5 -> "50%", 2.0 -> "100%".
func multiplierLabel(multiplier decimal.Decimal) string {
	return multiplier.Sub(decimalOne).Mul(decimalHundred).Round(0).String() + "%"
}

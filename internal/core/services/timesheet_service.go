package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// timesheetService aggregates raw punches into per-period hour totals.
type timesheetService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	policy         domain.PayPolicy
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(attendanceRepo portsrepo.AttendanceRepositoryFacade, policy domain.PayPolicy) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		attendanceRepo: attendanceRepo,
		policy:         policy,
	}
}

var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// AggregatePeriod implements portssvc.TimesheetAggregatorSvc.
func (s *timesheetService) AggregatePeriod(ctx context.Context, employee domain.Employee, period domain.Period, effectiveStandardHours decimal.Decimal) (domain.AttendancePunchSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	punches, err := s.attendanceRepo.ListPunchesForPeriod(ctx, employee.EmployeeID, period)
	if err != nil {
		return domain.AttendancePunchSummary{}, fmt.Errorf("failed to load punches for employee %s: %w", employee.EmployeeID, err)
	}

	summary := AggregatePunches(employee.EmployeeID, period, punches, effectiveStandardHours, s.policy.OvertimeTier1MonthlyCap)
	if summary.HasAnomalies() {
		logger.Warn("attendance anomalies excluded from totals",
			slog.String("employee_id", employee.EmployeeID),
			slog.String("period", period.String()),
			slog.Int("anomalous_days", len(summary.AnomalousDays)))
	}
	return summary, nil
}

// RecordPunches implements portssvc.TimesheetWriterSvc.
func (s *timesheetService) RecordPunches(ctx context.Context, req dto.RecordPunchesRequest, creatorUserID string) (int, error) {
	now := time.Now().UTC()
	punches := make([]domain.Punch, len(req.Punches))
	for i, in := range req.Punches {
		punches[i] = domain.Punch{
			PunchID:    uuid.NewString(),
			EmployeeID: in.EmployeeID,
			Timestamp:  in.Timestamp.UTC(),
			Direction:  domain.PunchDirection(in.Direction),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}
	if err := s.attendanceRepo.SavePunches(ctx, punches); err != nil {
		return 0, fmt.Errorf("failed to save punches: %w", err)
	}
	return len(punches), nil
}

// CreateAdjustment implements portssvc.TimesheetWriterSvc.
func (s *timesheetService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error) {
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	adjustment := domain.Adjustment{
		AdjustmentID: uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		Period:       period,
		Code:         req.Code,
		Description:  req.Description,
		Amount:       req.Amount.Round(2),
		Kind:         domain.ConceptKind(req.Kind),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.attendanceRepo.SaveAdjustment(ctx, adjustment); err != nil {
		return nil, fmt.Errorf("failed to save adjustment: %w", err)
	}
	return &adjustment, nil
}

// AggregatePunches pairs an employee's punches into worked intervals and
// splits the period total into normal and overtime hours.
//
// Days whose punches cannot be paired (an exit with no prior entry, two
// entries in a row, or a dangling entry at end of day) are flagged anomalous
// and contribute nothing to the totals. Hours above effectiveStandardHours go
// to tier-1 overtime up to tier1Cap, then to tier-2. A non-positive tier1Cap
// means no cap.
func AggregatePunches(employeeID string, period domain.Period, punches []domain.Punch, effectiveStandardHours, tier1Cap decimal.Decimal) domain.AttendancePunchSummary {
	summary := domain.AttendancePunchSummary{
		EmployeeID:         employeeID,
		Period:             period,
		NormalHours:        decimal.Zero,
		OvertimeTier1Hours: decimal.Zero,
		OvertimeTier2Hours: decimal.Zero,
	}

	byDay := make(map[string][]domain.Punch)
	for _, p := range punches {
		if !period.Contains(p.Timestamp) {
			continue
		}
		day := p.Timestamp.Format("2006-01-02")
		byDay[day] = append(byDay[day], p)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	total := decimal.Zero
	for _, day := range days {
		hours, ok := dayHours(byDay[day])
		if !ok {
			summary.AnomalousDays = append(summary.AnomalousDays, day)
			continue
		}
		if hours.IsPositive() {
			summary.DaysWorked++
			total = total.Add(hours)
		}
	}

	summary.NormalHours = decimal.Min(total, effectiveStandardHours)
	excess := total.Sub(summary.NormalHours)
	if excess.IsPositive() {
		if tier1Cap.IsPositive() {
			summary.OvertimeTier1Hours = decimal.Min(excess, tier1Cap)
			summary.OvertimeTier2Hours = excess.Sub(summary.OvertimeTier1Hours)
		} else {
			summary.OvertimeTier1Hours = excess
		}
	}
	return summary
}

// dayHours sums the worked intervals of one day's punches, which are assumed
// sorted by timestamp. ok is false when the punches are inconsistent.
func dayHours(punches []domain.Punch) (decimal.Decimal, bool) {
	sort.Slice(punches, func(i, j int) bool { return punches[i].Timestamp.Before(punches[j].Timestamp) })

	hours := decimal.Zero
	var open *time.Time
	for i := range punches {
		p := punches[i]
		switch p.Direction {
		case domain.PunchIn:
			if open != nil {
				return decimal.Zero, false // two entries without an exit
			}
			t := p.Timestamp
			open = &t
		case domain.PunchOut:
			if open == nil {
				return decimal.Zero, false // exit precedes its entry
			}
			worked := p.Timestamp.Sub(*open)
			if worked < 0 {
				return decimal.Zero, false
			}
			hours = hours.Add(decimal.NewFromFloat(worked.Hours()).Round(2))
			open = nil
		default:
			return decimal.Zero, false
		}
	}
	if open != nil {
		return decimal.Zero, false // entry never closed
	}
	return hours, true
}

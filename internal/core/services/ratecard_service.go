package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// FallbackRateCardName names cards assembled from employee overrides.
const FallbackRateCardName = "Employee override"

// rateCardService resolves and administers rate cards.
type rateCardService struct {
	rateCardRepo portsrepo.RateCardRepositoryFacade
	policy       domain.PayPolicy
}

// NewRateCardService creates a new RateCardService.
func NewRateCardService(rateCardRepo portsrepo.RateCardRepositoryFacade, policy domain.PayPolicy) portssvc.RateCardSvcFacade {
	return &rateCardService{
		rateCardRepo: rateCardRepo,
		policy:       policy,
	}
}

var _ portssvc.RateCardSvcFacade = (*rateCardService)(nil)

// ResolveForPeriod implements portssvc.RateCardResolverSvc.
func (s *rateCardService) ResolveForPeriod(ctx context.Context, employee domain.Employee, period domain.Period) (domain.RateCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if employee.RateCardID != nil && *employee.RateCardID != "" {
		card, err := s.rateCardRepo.FindRateCardByID(ctx, *employee.RateCardID)
		if err != nil {
			return domain.RateCard{}, fmt.Errorf("%w: assigned rate card %s for employee %s: %v",
				apperrors.ErrMissingRateData, *employee.RateCardID, employee.EmployeeID, err)
		}
		return *card, nil
	}

	// No assigned card: assemble one from the employee's own overrides. The
	// fallback must be visible in the run logs, never a silent zero rate.
	if employee.MonthlySalary != nil && employee.StandardMonthlyHours != nil &&
		employee.MonthlySalary.IsPositive() && employee.StandardMonthlyHours.IsPositive() {
		impliedRate := employee.MonthlySalary.Div(*employee.StandardMonthlyHours).Round(4)
		logger.Warn("employee has no rate card, falling back to salary overrides",
			slog.String("employee_id", employee.EmployeeID),
			slog.String("period", period.String()),
			slog.String("implied_hourly_rate", impliedRate.String()))
		return domain.RateCard{
			Name:                 FallbackRateCardName,
			HourlyRate:           impliedRate,
			StandardMonthlyHours: *employee.StandardMonthlyHours,
			OvertimeTier1Rate:    s.policy.FallbackOvertimeTier1Rate,
			OvertimeTier2Rate:    s.policy.FallbackOvertimeTier2Rate,
			IsActive:             true,
		}, nil
	}

	return domain.RateCard{}, fmt.Errorf("%w: employee %s", apperrors.ErrMissingRateData, employee.EmployeeID)
}

// GetRateCardByID implements portssvc.RateCardReaderSvc.
func (s *rateCardService) GetRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error) {
	return s.rateCardRepo.FindRateCardByID(ctx, rateCardID)
}

// ListRateCards implements portssvc.RateCardReaderSvc.
func (s *rateCardService) ListRateCards(ctx context.Context) ([]domain.RateCard, error) {
	return s.rateCardRepo.ListRateCards(ctx)
}

// CreateRateCard implements portssvc.RateCardWriterSvc.
func (s *rateCardService) CreateRateCard(ctx context.Context, req dto.CreateRateCardRequest, creatorUserID string) (*domain.RateCard, error) {
	if !req.HourlyRate.IsPositive() || !req.StandardMonthlyHours.IsPositive() {
		return nil, fmt.Errorf("%w: hourly rate and standard hours must be positive", apperrors.ErrValidation)
	}
	if req.OvertimeTier1Rate.LessThan(decimalOne) || req.OvertimeTier2Rate.LessThan(req.OvertimeTier1Rate) {
		return nil, fmt.Errorf("%w: overtime multipliers must be >= 1 and non-decreasing", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	card := domain.RateCard{
		RateCardID:           uuid.NewString(),
		Name:                 req.Name,
		HourlyRate:           req.HourlyRate,
		StandardMonthlyHours: req.StandardMonthlyHours,
		OvertimeTier1Rate:    req.OvertimeTier1Rate,
		OvertimeTier2Rate:    req.OvertimeTier2Rate,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.rateCardRepo.SaveRateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save rate card: %w", err)
	}
	return &card, nil
}

// DeactivateRateCard implements portssvc.RateCardWriterSvc.
func (s *rateCardService) DeactivateRateCard(ctx context.Context, rateCardID string, requestingUserID string) error {
	return s.rateCardRepo.DeactivateRateCard(ctx, rateCardID, requestingUserID)
}

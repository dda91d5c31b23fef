package services

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
)

// RateCardResolverSvc resolves the rate card effective for an employee and period.
type RateCardResolverSvc interface {
	// ResolveForPeriod returns the employee's assigned rate card, or a fallback
	// card assembled from the employee's own overrides. When neither exists it
	// fails with apperrors.ErrMissingRateData — never a zero rate.
	ResolveForPeriod(ctx context.Context, employee domain.Employee, period domain.Period) (domain.RateCard, error)
}

// RateCardReaderSvc defines read operations for rate cards
type RateCardReaderSvc interface {
	// GetRateCardByID retrieves a specific rate card.
	GetRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error)

	// ListRateCards retrieves all rate cards.
	ListRateCards(ctx context.Context) ([]domain.RateCard, error)
}

// RateCardWriterSvc defines write operations for rate cards
type RateCardWriterSvc interface {
	// CreateRateCard persists a new rate card.
	CreateRateCard(ctx context.Context, req dto.CreateRateCardRequest, creatorUserID string) (*domain.RateCard, error)

	// DeactivateRateCard marks a rate card as inactive.
	DeactivateRateCard(ctx context.Context, rateCardID string, requestingUserID string) error
}

// RateCardSvcFacade combines all rate-card service interfaces
type RateCardSvcFacade interface {
	RateCardResolverSvc
	RateCardReaderSvc
	RateCardWriterSvc
}

package repositories

import (
	"context"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
)

// RateCardReader defines read operations for rate-card reference data
type RateCardReader interface {
	// FindRateCardByID retrieves a specific rate card by its unique identifier.
	FindRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error)

	// ListRateCards retrieves all rate cards, active first.
	ListRateCards(ctx context.Context) ([]domain.RateCard, error)
}

// RateCardWriter defines write operations for rate-card reference data
type RateCardWriter interface {
	// SaveRateCard persists a new rate card.
	SaveRateCard(ctx context.Context, card domain.RateCard) error

	// DeactivateRateCard marks a rate card as inactive.
	DeactivateRateCard(ctx context.Context, rateCardID string, updatedBy string) error
}

// RateCardRepositoryFacade combines all rate-card repository interfaces
type RateCardRepositoryFacade interface {
	RateCardReader
	RateCardWriter
}

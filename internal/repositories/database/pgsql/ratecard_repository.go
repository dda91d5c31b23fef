package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/models"
	"github.com/LBaravalle/payroll_engine_app/internal/utils/mapping"
)

type PgxRateCardRepository struct {
	BaseRepository
}

// newPgxRateCardRepository creates a new repository for rate-card reference data.
func newPgxRateCardRepository(pool *pgxpool.Pool) portsrepo.RateCardRepositoryFacade {
	return &PgxRateCardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateCardRepositoryFacade = (*PgxRateCardRepository)(nil)

const rateCardColumns = `
	rate_card_id, name, hourly_rate, standard_monthly_hours,
	overtime_tier1_rate, overtime_tier2_rate, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindRateCardByID retrieves a specific rate card by its unique identifier.
func (r *PgxRateCardRepository) FindRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error) {
	query := `SELECT ` + rateCardColumns + ` FROM rate_cards WHERE rate_card_id = $1;`

	var m models.RateCard
	err := r.Pool.QueryRow(ctx, query, rateCardID).Scan(
		&m.RateCardID, &m.Name, &m.HourlyRate, &m.StandardMonthlyHours,
		&m.OvertimeTier1Rate, &m.OvertimeTier2Rate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate card %s: %w", rateCardID, err)
	}

	card := mapping.ToDomainRateCard(m)
	return &card, nil
}

// ListRateCards retrieves all rate cards, active first.
func (r *PgxRateCardRepository) ListRateCards(ctx context.Context) ([]domain.RateCard, error) {
	query := `SELECT ` + rateCardColumns + ` FROM rate_cards ORDER BY is_active DESC, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.RateCard
	for rows.Next() {
		var m models.RateCard
		if err := rows.Scan(
			&m.RateCardID, &m.Name, &m.HourlyRate, &m.StandardMonthlyHours,
			&m.OvertimeTier1Rate, &m.OvertimeTier2Rate, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rate card row: %w", err)
		}
		cards = append(cards, mapping.ToDomainRateCard(m))
	}
	return cards, rows.Err()
}

// SaveRateCard persists a new rate card.
func (r *PgxRateCardRepository) SaveRateCard(ctx context.Context, card domain.RateCard) error {
	m := mapping.ToModelRateCard(card)
	query := `
		INSERT INTO rate_cards (` + rateCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateCardID, m.Name, m.HourlyRate, m.StandardMonthlyHours,
		m.OvertimeTier1Rate, m.OvertimeTier2Rate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate card %s: %w", m.RateCardID, err)
	}
	return nil
}

// DeactivateRateCard marks a rate card as inactive.
func (r *PgxRateCardRepository) DeactivateRateCard(ctx context.Context, rateCardID string, updatedBy string) error {
	query := `
		UPDATE rate_cards SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE rate_card_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, rateCardID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate rate card %s: %w", rateCardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

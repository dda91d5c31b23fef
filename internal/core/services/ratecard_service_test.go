package services_test

import (
	"context"
	"testing"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RateCardRepository ---
type MockRateCardRepository struct {
	mock.Mock
}

var _ portsrepo.RateCardRepositoryFacade = (*MockRateCardRepository)(nil)

func (m *MockRateCardRepository) FindRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error) {
	args := m.Called(ctx, rateCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCard), args.Error(1)
}

func (m *MockRateCardRepository) ListRateCards(ctx context.Context) ([]domain.RateCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateCard), args.Error(1)
}

func (m *MockRateCardRepository) SaveRateCard(ctx context.Context, card domain.RateCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockRateCardRepository) DeactivateRateCard(ctx context.Context, rateCardID string, updatedBy string) error {
	args := m.Called(ctx, rateCardID, updatedBy)
	return args.Error(0)
}

func fallbackPolicy() domain.PayPolicy {
	policy := testPolicy()
	policy.FallbackOvertimeTier1Rate = decimal.RequireFromString("1.5")
	policy.FallbackOvertimeTier2Rate = decimal.NewFromInt(2)
	return policy
}

func TestResolveForPeriod_AssignedCard(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRateCardRepository)
	svc := services.NewRateCardService(mockRepo, fallbackPolicy())

	expected := testRateCard()
	mockRepo.On("FindRateCardByID", ctx, "rc-1").Return(&expected, nil)

	card, err := svc.ResolveForPeriod(ctx, testEmployee(), testPeriod())
	require.NoError(t, err)
	assert.Equal(t, expected, card)
	assert.False(t, card.Fallback())
	mockRepo.AssertExpectations(t)
}

func TestResolveForPeriod_AssignedCardMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRateCardRepository)
	svc := services.NewRateCardService(mockRepo, fallbackPolicy())

	mockRepo.On("FindRateCardByID", ctx, "rc-1").Return(nil, apperrors.ErrNotFound)

	_, err := svc.ResolveForPeriod(ctx, testEmployee(), testPeriod())
	assert.ErrorIs(t, err, apperrors.ErrMissingRateData)
}

func TestResolveForPeriod_FallbackFromOverrides(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRateCardRepository)
	svc := services.NewRateCardService(mockRepo, fallbackPolicy())

	employee := testEmployee()
	employee.RateCardID = nil
	employee.MonthlySalary = decimalPtr(decimal.NewFromInt(240000))
	employee.StandardMonthlyHours = decimalPtr(decimal.NewFromInt(160))

	card, err := svc.ResolveForPeriod(ctx, employee, testPeriod())
	require.NoError(t, err)

	assert.True(t, card.Fallback())
	assert.Equal(t, services.FallbackRateCardName, card.Name)
	assert.Equal(t, "1500", card.HourlyRate.String()) // 240000 / 160
	assert.Equal(t, "1.5", card.OvertimeTier1Rate.String())
	assert.Equal(t, "2", card.OvertimeTier2Rate.String())
	mockRepo.AssertNotCalled(t, "FindRateCardByID")
}

func TestResolveForPeriod_NoCardNoOverrides(t *testing.T) {
	mockRepo := new(MockRateCardRepository)
	svc := services.NewRateCardService(mockRepo, fallbackPolicy())

	employee := testEmployee()
	employee.RateCardID = nil

	_, err := svc.ResolveForPeriod(context.Background(), employee, testPeriod())
	assert.ErrorIs(t, err, apperrors.ErrMissingRateData)
}

func TestCreateRateCard(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRateCardRepository)
	svc := services.NewRateCardService(mockRepo, fallbackPolicy())

	mockRepo.On("SaveRateCard", ctx, mock.MatchedBy(func(card domain.RateCard) bool {
		return card.RateCardID != "" && card.IsActive && card.CreatedBy == "user-1"
	})).Return(nil)

	card, err := svc.CreateRateCard(ctx, dto.CreateRateCardRequest{
		Name:                 "Metalworkers agreement",
		HourlyRate:           decimal.NewFromInt(1000),
		StandardMonthlyHours: decimal.NewFromInt(160),
		OvertimeTier1Rate:    decimal.RequireFromString("1.5"),
		OvertimeTier2Rate:    decimal.NewFromInt(2),
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Metalworkers agreement", card.Name)
	mockRepo.AssertExpectations(t)
}

func TestCreateRateCard_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateRateCardRequest
	}{
		{
			name: "non-positive hourly rate",
			req: dto.CreateRateCardRequest{
				Name:                 "Bad",
				HourlyRate:           decimal.Zero,
				StandardMonthlyHours: decimal.NewFromInt(160),
				OvertimeTier1Rate:    decimal.RequireFromString("1.5"),
				OvertimeTier2Rate:    decimal.NewFromInt(2),
			},
		},
		{
			name: "overtime multiplier below one",
			req: dto.CreateRateCardRequest{
				Name:                 "Bad",
				HourlyRate:           decimal.NewFromInt(1000),
				StandardMonthlyHours: decimal.NewFromInt(160),
				OvertimeTier1Rate:    decimal.RequireFromString("0.5"),
				OvertimeTier2Rate:    decimal.NewFromInt(2),
			},
		},
		{
			name: "decreasing overtime multipliers",
			req: dto.CreateRateCardRequest{
				Name:                 "Bad",
				HourlyRate:           decimal.NewFromInt(1000),
				StandardMonthlyHours: decimal.NewFromInt(160),
				OvertimeTier1Rate:    decimal.NewFromInt(2),
				OvertimeTier2Rate:    decimal.RequireFromString("1.5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRateCardRepository)
			svc := services.NewRateCardService(mockRepo, fallbackPolicy())

			_, err := svc.CreateRateCard(context.Background(), tt.req, "user-1")
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			mockRepo.AssertNotCalled(t, "SaveRateCard")
		})
	}
}

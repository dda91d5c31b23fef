package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	mockEmployees := new(MockEmployeeRepository)
	mockRateCards := new(MockRateCardRepository)
	svc := services.NewEmployeeService(mockEmployees, mockRateCards)

	card := testRateCard()
	mockRateCards.On("FindRateCardByID", ctx, "rc-1").Return(&card, nil)
	mockEmployees.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID != "" &&
			e.LegajoNumber == 42 &&
			e.HireDate.Equal(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)) &&
			e.IsActive &&
			e.CreatedBy == "user-1"
	})).Return(nil)

	employee, err := svc.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		LegajoNumber: 42,
		FirstName:    "Ana",
		LastName:     "Gomez",
		HireDate:     "2025-01-10",
		RateCardID:   stringPtr("rc-1"),
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Gomez, Ana", employee.FullName())
	mockEmployees.AssertExpectations(t)
}

func TestCreateEmployee_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed hire date", func(t *testing.T) {
		svc := services.NewEmployeeService(new(MockEmployeeRepository), new(MockRateCardRepository))

		_, err := svc.CreateEmployee(ctx, dto.CreateEmployeeRequest{
			LegajoNumber: 42,
			FirstName:    "Ana",
			LastName:     "Gomez",
			HireDate:     "10/01/2025",
		}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown rate card", func(t *testing.T) {
		mockRateCards := new(MockRateCardRepository)
		mockRateCards.On("FindRateCardByID", ctx, "rc-ghost").Return(nil, apperrors.ErrNotFound)
		svc := services.NewEmployeeService(new(MockEmployeeRepository), mockRateCards)

		_, err := svc.CreateEmployee(ctx, dto.CreateEmployeeRequest{
			LegajoNumber: 42,
			FirstName:    "Ana",
			LastName:     "Gomez",
			HireDate:     "2025-01-10",
			RateCardID:   stringPtr("rc-ghost"),
		}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("percentage override above one", func(t *testing.T) {
		svc := services.NewEmployeeService(new(MockEmployeeRepository), new(MockRateCardRepository))

		_, err := svc.CreateEmployee(ctx, dto.CreateEmployeeRequest{
			LegajoNumber: 42,
			FirstName:    "Ana",
			LastName:     "Gomez",
			HireDate:     "2025-01-10",
			HealthRate:   decimalPtr(decimal.RequireFromString("3")), // 3 = 300%, surely meant 0.03
		}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpdateEmployee_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	mockEmployees := new(MockEmployeeRepository)
	mockRateCards := new(MockRateCardRepository)
	svc := services.NewEmployeeService(mockEmployees, mockRateCards)

	existing := testEmployee()
	mockEmployees.On("FindEmployeeByID", ctx, existing.EmployeeID).Return(&existing, nil)

	var saved domain.Employee
	mockEmployees.On("UpdateEmployee", ctx, mock.AnythingOfType("domain.Employee")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Employee) }).
		Return(nil)

	_, err := svc.UpdateEmployee(ctx, existing.EmployeeID, dto.UpdateEmployeeRequest{
		HealthRate: decimalPtr(decimal.RequireFromString("0.04")),
	}, "user-2")
	require.NoError(t, err)

	assert.Equal(t, "0.04", saved.HealthRate.String())
	assert.Equal(t, existing.FirstName, saved.FirstName) // untouched
	assert.Equal(t, "user-2", saved.LastUpdatedBy)
}

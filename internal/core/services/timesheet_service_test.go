package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AttendanceRepository ---
type MockAttendanceRepository struct {
	mock.Mock
}

var _ portsrepo.AttendanceRepositoryFacade = (*MockAttendanceRepository)(nil)

func (m *MockAttendanceRepository) ListPunchesForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Punch, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Punch), args.Error(1)
}

func (m *MockAttendanceRepository) SavePunches(ctx context.Context, punches []domain.Punch) error {
	args := m.Called(ctx, punches)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ListAdjustmentsForPeriod(ctx context.Context, employeeID string, period domain.Period) ([]domain.Adjustment, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

func (m *MockAttendanceRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func punch(day, clock string, direction domain.PunchDirection) domain.Punch {
	ts, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return domain.Punch{
		PunchID:    "p-" + day + clock,
		EmployeeID: "emp-1",
		Timestamp:  ts.UTC(),
		Direction:  direction,
	}
}

func TestAggregatePunches_PairsIntervals(t *testing.T) {
	punches := []domain.Punch{
		punch("2025-06-02", "09:00", domain.PunchIn),
		punch("2025-06-02", "17:00", domain.PunchOut),
		punch("2025-06-03", "09:00", domain.PunchIn),
		punch("2025-06-03", "13:00", domain.PunchOut),
		punch("2025-06-03", "14:00", domain.PunchIn),
		punch("2025-06-03", "18:30", domain.PunchOut),
	}

	summary := services.AggregatePunches("emp-1", testPeriod(), punches, decimal.NewFromInt(160), decimal.NewFromInt(30))

	assert.Equal(t, "12.5", summary.TotalHours().String()) // 8 + 4 + 4.5
	assert.Equal(t, "12.5", summary.NormalHours.String())
	assert.Equal(t, 2, summary.DaysWorked)
	assert.Empty(t, summary.AnomalousDays)
}

func TestAggregatePunches_OvertimeTierSplit(t *testing.T) {
	punches := []domain.Punch{
		punch("2025-06-02", "00:00", domain.PunchIn),
		punch("2025-06-02", "20:00", domain.PunchOut),
	}

	// 20 worked hours against 8 standard: 12 excess, capped at 10 tier-1.
	summary := services.AggregatePunches("emp-1", testPeriod(), punches, decimal.NewFromInt(8), decimal.NewFromInt(10))

	assert.Equal(t, "8", summary.NormalHours.String())
	assert.Equal(t, "10", summary.OvertimeTier1Hours.String())
	assert.Equal(t, "2", summary.OvertimeTier2Hours.String())
}

func TestAggregatePunches_UncappedTier1(t *testing.T) {
	punches := []domain.Punch{
		punch("2025-06-02", "00:00", domain.PunchIn),
		punch("2025-06-02", "20:00", domain.PunchOut),
	}

	summary := services.AggregatePunches("emp-1", testPeriod(), punches, decimal.NewFromInt(8), decimal.Zero)

	assert.Equal(t, "12", summary.OvertimeTier1Hours.String())
	assert.True(t, summary.OvertimeTier2Hours.IsZero())
}

func TestAggregatePunches_AnomalousDaysExcluded(t *testing.T) {
	tests := []struct {
		name    string
		punches []domain.Punch
	}{
		{
			name: "two entries without an exit",
			punches: []domain.Punch{
				punch("2025-06-05", "09:00", domain.PunchIn),
				punch("2025-06-05", "10:00", domain.PunchIn),
				punch("2025-06-05", "17:00", domain.PunchOut),
			},
		},
		{
			name: "exit before any entry",
			punches: []domain.Punch{
				punch("2025-06-05", "09:00", domain.PunchOut),
				punch("2025-06-05", "17:00", domain.PunchIn),
				punch("2025-06-05", "18:00", domain.PunchOut),
			},
		},
		{
			name: "dangling entry at end of day",
			punches: []domain.Punch{
				punch("2025-06-05", "09:00", domain.PunchIn),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			punches := append([]domain.Punch{
				punch("2025-06-02", "09:00", domain.PunchIn),
				punch("2025-06-02", "17:00", domain.PunchOut),
			}, tt.punches...)

			summary := services.AggregatePunches("emp-1", testPeriod(), punches, decimal.NewFromInt(160), decimal.Zero)

			// The clean day counts, the broken one contributes nothing.
			assert.Equal(t, "8", summary.TotalHours().String())
			assert.Equal(t, 1, summary.DaysWorked)
			assert.Equal(t, []string{"2025-06-05"}, summary.AnomalousDays)
		})
	}
}

func TestAggregatePunches_IgnoresPunchesOutsidePeriod(t *testing.T) {
	punches := []domain.Punch{
		punch("2025-05-31", "09:00", domain.PunchIn),
		punch("2025-05-31", "17:00", domain.PunchOut),
		punch("2025-06-02", "09:00", domain.PunchIn),
		punch("2025-06-02", "17:00", domain.PunchOut),
	}

	summary := services.AggregatePunches("emp-1", testPeriod(), punches, decimal.NewFromInt(160), decimal.Zero)

	assert.Equal(t, "8", summary.TotalHours().String())
	assert.Equal(t, 1, summary.DaysWorked)
}

func TestTimesheetService_AggregatePeriod(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAttendanceRepository)
	svc := services.NewTimesheetService(mockRepo, testPolicy())

	employee := testEmployee()
	punches := []domain.Punch{
		punch("2025-06-02", "09:00", domain.PunchIn),
		punch("2025-06-02", "17:00", domain.PunchOut),
	}
	mockRepo.On("ListPunchesForPeriod", ctx, employee.EmployeeID, testPeriod()).Return(punches, nil)

	summary, err := svc.AggregatePeriod(ctx, employee, testPeriod(), decimal.NewFromInt(160))
	require.NoError(t, err)

	assert.Equal(t, employee.EmployeeID, summary.EmployeeID)
	assert.Equal(t, "8", summary.NormalHours.String())
	mockRepo.AssertExpectations(t)
}

func TestTimesheetService_RecordPunches(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAttendanceRepository)
	svc := services.NewTimesheetService(mockRepo, testPolicy())

	mockRepo.On("SavePunches", ctx, mock.MatchedBy(func(punches []domain.Punch) bool {
		return len(punches) == 2 &&
			punches[0].PunchID != "" &&
			punches[0].Direction == domain.PunchIn &&
			punches[0].CreatedBy == "user-1"
	})).Return(nil)

	count, err := svc.RecordPunches(ctx, dto.RecordPunchesRequest{
		Punches: []dto.PunchInput{
			{EmployeeID: "emp-1", Timestamp: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), Direction: "IN"},
			{EmployeeID: "emp-1", Timestamp: time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC), Direction: "OUT"},
		},
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	mockRepo.AssertExpectations(t)
}

func TestTimesheetService_CreateAdjustment(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAttendanceRepository)
	svc := services.NewTimesheetService(mockRepo, testPolicy())

	mockRepo.On("SaveAdjustment", ctx, mock.MatchedBy(func(adj domain.Adjustment) bool {
		return adj.AdjustmentID != "" &&
			adj.Period == testPeriod() &&
			adj.Amount.Equal(decimal.RequireFromString("5000.00")) &&
			adj.Kind == domain.Remunerative
	})).Return(nil)

	adjustment, err := svc.CreateAdjustment(ctx, dto.CreateAdjustmentRequest{
		EmployeeID:  "emp-1",
		Period:      "2025-06",
		Code:        "310",
		Description: "Production bonus",
		Amount:      decimal.RequireFromString("5000.004"), // rounded to the cent on entry
		Kind:        "REMUNERATIVE",
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Production bonus", adjustment.Description)
	mockRepo.AssertExpectations(t)
}

func TestTimesheetService_CreateAdjustment_BadPeriod(t *testing.T) {
	mockRepo := new(MockAttendanceRepository)
	svc := services.NewTimesheetService(mockRepo, testPolicy())

	_, err := svc.CreateAdjustment(context.Background(), dto.CreateAdjustmentRequest{
		EmployeeID: "emp-1",
		Period:     "junio 2025",
		Code:       "310",
		Amount:     decimal.NewFromInt(100),
		Kind:       "REMUNERATIVE",
	}, "user-1")
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "SaveAdjustment")
}

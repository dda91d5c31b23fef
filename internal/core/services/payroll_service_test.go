package services_test

import (
	"context"
	"testing"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/core/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string) error {
	args := m.Called(ctx, employeeID, updatedBy)
	return args.Error(0)
}

// --- Mock RateCardService ---
type MockRateCardService struct {
	mock.Mock
}

var _ portssvc.RateCardSvcFacade = (*MockRateCardService)(nil)

func (m *MockRateCardService) ResolveForPeriod(ctx context.Context, employee domain.Employee, period domain.Period) (domain.RateCard, error) {
	args := m.Called(ctx, employee, period)
	return args.Get(0).(domain.RateCard), args.Error(1)
}

func (m *MockRateCardService) GetRateCardByID(ctx context.Context, rateCardID string) (*domain.RateCard, error) {
	args := m.Called(ctx, rateCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCard), args.Error(1)
}

func (m *MockRateCardService) ListRateCards(ctx context.Context) ([]domain.RateCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateCard), args.Error(1)
}

func (m *MockRateCardService) CreateRateCard(ctx context.Context, req dto.CreateRateCardRequest, creatorUserID string) (*domain.RateCard, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCard), args.Error(1)
}

func (m *MockRateCardService) DeactivateRateCard(ctx context.Context, rateCardID string, requestingUserID string) error {
	args := m.Called(ctx, rateCardID, requestingUserID)
	return args.Error(0)
}

// --- Mock TimesheetService ---
type MockTimesheetService struct {
	mock.Mock
}

var _ portssvc.TimesheetSvcFacade = (*MockTimesheetService)(nil)

func (m *MockTimesheetService) AggregatePeriod(ctx context.Context, employee domain.Employee, period domain.Period, effectiveStandardHours decimal.Decimal) (domain.AttendancePunchSummary, error) {
	args := m.Called(ctx, employee, period, effectiveStandardHours)
	return args.Get(0).(domain.AttendancePunchSummary), args.Error(1)
}

func (m *MockTimesheetService) RecordPunches(ctx context.Context, req dto.RecordPunchesRequest, creatorUserID string) (int, error) {
	args := m.Called(ctx, req, creatorUserID)
	return args.Int(0), args.Error(1)
}

func (m *MockTimesheetService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adjustment), args.Error(1)
}

type payrollFixture struct {
	employeeRepo   *MockEmployeeRepository
	attendanceRepo *MockAttendanceRepository
	statementRepo  *MockStatementRepository
	rateCardSvc    *MockRateCardService
	timesheetSvc   *MockTimesheetService
	svc            portssvc.PayrollSvcFacade
}

func newPayrollFixture() *payrollFixture {
	f := &payrollFixture{
		employeeRepo:   new(MockEmployeeRepository),
		attendanceRepo: new(MockAttendanceRepository),
		statementRepo:  new(MockStatementRepository),
		rateCardSvc:    new(MockRateCardService),
		timesheetSvc:   new(MockTimesheetService),
	}
	f.svc = services.NewPayrollService(
		f.employeeRepo,
		f.attendanceRepo,
		f.statementRepo,
		f.rateCardSvc,
		f.timesheetSvc,
		testPolicy(),
	)
	return f
}

func (f *payrollFixture) expectComputation(ctx context.Context, employee domain.Employee) {
	f.employeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(&employee, nil)
	f.rateCardSvc.On("ResolveForPeriod", ctx, employee, testPeriod()).Return(testRateCard(), nil)

	summary := testSummary("160", "0", "0", 22)
	summary.EmployeeID = employee.EmployeeID
	f.timesheetSvc.On("AggregatePeriod", ctx, employee, testPeriod(), mock.Anything).Return(summary, nil)
	f.attendanceRepo.On("ListAdjustmentsForPeriod", ctx, employee.EmployeeID, testPeriod()).Return([]domain.Adjustment{}, nil)
}

func TestComputeStatement(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture()

	employee := testEmployee()
	f.expectComputation(ctx, employee)
	f.statementRepo.On("SaveStatement", ctx, mock.MatchedBy(func(st domain.PayStatement) bool {
		return st.StatementID != "" && st.CreatedBy == "user-1" && st.Balanced()
	})).Return(nil)

	statement, err := f.svc.ComputeStatement(ctx, employee.EmployeeID, testPeriod(), domain.StatementDraft, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "160000", statement.TotalRemunerative.String())
	assert.Equal(t, domain.StatementDraft, statement.Status)
	assert.NotEmpty(t, statement.StatementID)
	f.statementRepo.AssertExpectations(t)
}

func TestComputeStatement_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture()

	f.employeeRepo.On("FindEmployeeByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := f.svc.ComputeStatement(ctx, "ghost", testPeriod(), domain.StatementDraft, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrMissingInputData)
	f.statementRepo.AssertNotCalled(t, "SaveStatement")
}

func TestRunPayroll_OneFailureDoesNotAbortTheRun(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture()

	healthy := testEmployee()
	broken := testEmployee()
	broken.EmployeeID = "emp-2"
	broken.LegajoNumber = 43
	broken.RateCardID = stringPtr("rc-missing")

	f.employeeRepo.On("ListActiveEmployees", ctx).Return([]domain.Employee{healthy, broken}, nil)

	f.expectComputation(ctx, healthy)
	f.statementRepo.On("SaveStatement", ctx, mock.AnythingOfType("domain.PayStatement")).Return(nil)

	f.employeeRepo.On("FindEmployeeByID", ctx, broken.EmployeeID).Return(&broken, nil)
	f.rateCardSvc.On("ResolveForPeriod", ctx, broken, testPeriod()).
		Return(domain.RateCard{}, apperrors.ErrMissingRateData)

	response, err := f.svc.RunPayroll(ctx, dto.RunPayrollRequest{Period: "2025-06"}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, response.Computed)
	assert.Equal(t, 1, response.Failed)
	require.Len(t, response.Results, 2)
	assert.NotEmpty(t, response.Results[0].StatementID)
	assert.Empty(t, response.Results[1].StatementID)
	assert.Contains(t, response.Results[1].Error, "no rate card")
}

func TestRunPayroll_FinalStatus(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture()

	employee := testEmployee()
	f.employeeRepo.On("ListActiveEmployees", ctx).Return([]domain.Employee{employee}, nil)
	f.expectComputation(ctx, employee)

	var saved domain.PayStatement
	f.statementRepo.On("SaveStatement", ctx, mock.AnythingOfType("domain.PayStatement")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.PayStatement) }).
		Return(nil)

	response, err := f.svc.RunPayroll(ctx, dto.RunPayrollRequest{Period: "2025-06", Final: true}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, response.Computed)
	assert.Equal(t, domain.StatementFinal, saved.Status)
}

func TestGetAttendanceSummary(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture()

	employee := testEmployee()
	f.employeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(&employee, nil)
	f.rateCardSvc.On("ResolveForPeriod", ctx, employee, testPeriod()).Return(testRateCard(), nil)
	f.timesheetSvc.On("AggregatePeriod", ctx, employee, testPeriod(), mock.MatchedBy(func(hours decimal.Decimal) bool {
		return hours.Equal(decimal.NewFromInt(160))
	})).Return(testSummary("152", "4", "0", 19), nil)

	summary, err := f.svc.GetAttendanceSummary(ctx, employee.EmployeeID, testPeriod())
	require.NoError(t, err)
	assert.Equal(t, "152", summary.NormalHours.String())
	assert.Equal(t, 19, summary.DaysWorked)
}

func TestRunPayroll_BadPeriod(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.svc.RunPayroll(context.Background(), dto.RunPayrollRequest{Period: "06/2025"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	f.employeeRepo.AssertNotCalled(t, "ListActiveEmployees")
}

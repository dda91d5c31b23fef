package services

import (
	portsrepo "github.com/LBaravalle/payroll_engine_app/internal/core/ports/repositories"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/platform/config"
)

// NewServiceProvider creates the service layer with properly wired dependencies.
func NewServiceProvider(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceProvider {
	provider := &portssvc.ServiceProvider{}

	// Rate card resolution feeds payroll computation, so it goes first.
	provider.RateCardSvc = NewRateCardService(repos.RateCardRepo, cfg.Policy)
	provider.TimesheetSvc = NewTimesheetService(repos.AttendanceRepo, cfg.Policy)
	provider.EmployeeSvc = NewEmployeeService(repos.EmployeeRepo, repos.RateCardRepo)

	provider.PayrollSvc = NewPayrollService(
		repos.EmployeeRepo,
		repos.AttendanceRepo,
		repos.StatementRepo,
		provider.RateCardSvc,
		provider.TimesheetSvc,
		cfg.Policy,
	)
	provider.LedgerSvc = NewLedgerService(repos.StatementRepo, repos.JournalRepo, cfg.Chart)
	provider.ExportSvc = NewExportService(cfg.ExportWidths)
	provider.PayslipSvc = NewPayslipService()

	return provider
}

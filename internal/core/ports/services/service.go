package services

// ServiceProvider bundles every service facade the handlers need.
type ServiceProvider struct {
	EmployeeSvc  EmployeeSvcFacade
	RateCardSvc  RateCardSvcFacade
	TimesheetSvc TimesheetSvcFacade
	PayrollSvc   PayrollSvcFacade
	LedgerSvc    LedgerSvcFacade
	ExportSvc    ExportSvc
	PayslipSvc   PayslipRendererSvc
}

package repositories

// RepositoryProvider bundles every repository the service container needs.
type RepositoryProvider struct {
	EmployeeRepo   EmployeeRepositoryFacade
	RateCardRepo   RateCardRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	StatementRepo  StatementRepositoryWithTx
	JournalRepo    JournalRepositoryWithTx
}

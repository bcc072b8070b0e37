package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	CurrencyRepo    CurrencyRepository
	TransactionRepo TransactionRepository
	BalanceRepo     BalanceRepository
	ReportingRepo   ReportingRepository
	UserRepo        UserRepository
}

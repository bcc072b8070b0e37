package services

// ServiceContainer holds all service facades needed by the HTTP layer.
type ServiceContainer struct {
	Currency    CurrencySvcFacade
	Transaction TransactionSvcFacade
	Balance     BalanceSvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
}

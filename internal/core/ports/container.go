package ports

// ServiceContainer bundles the service interfaces the HTTP layer consumes,
// so route registration takes one dependency instead of four.
type ServiceContainer struct {
	Auth      AuthService
	Converter ConverterService
	Ledger    LedgerService
	Balance   BalanceService
}

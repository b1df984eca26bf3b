package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality and is what the
// handlers receive at route registration.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Budget      BudgetSvcFacade
	Goal        GoalSvcFacade
	Recurring   RecurringSvcFacade
	Reporting   ReportingSvcFacade
	Rates       RatesSvcFacade
}

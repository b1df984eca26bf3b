package services

import (
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/integrations/ecb"
)

// NewServiceContainer wires every service with its repositories and returns
// the container the handlers are registered with.
func NewServiceContainer(repos portsrepo.RepositoryProvider, ecbClient *ecb.Client) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, repos.TransactionRepo),
		Goal:        NewGoalService(repos.GoalRepo),
		Recurring:   NewRecurringService(repos.RecurringRepo, repos.TransactionRepo, repos.AccountRepo),
		Reporting:   NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.BudgetRepo, repos.GoalRepo),
		Rates:       NewRatesService(ecbClient),
	}
}

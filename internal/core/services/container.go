package services

import (
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Reporting:   NewReportingService(repos.TransactionRepo),
		Suggestion:  NewSuggestionService(repos.SuggestionRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.SuggestionSvcFacade  = (*suggestionService)(nil)
)

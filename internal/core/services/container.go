package services

import (
	portsrepo "github.com/atithihms/hotel_books_app/internal/core/ports/repositories"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/utils/gst"
)

// Repositories bundles the repository implementations the services build on.
type Repositories struct {
	Account   portsrepo.AccountRepository
	Journal   portsrepo.JournalRepository
	Source    portsrepo.SourceRepository
	Reporting portsrepo.ReportingRepository
}

// NewServiceContainer wires all services with their dependencies. The tax
// calculator is constructed once from configuration and shared; it is
// immutable for the process lifetime.
func NewServiceContainer(repos Repositories, calc gst.Calculator) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:        NewAccountService(repos.Account),
		Vendor:         NewVendorService(repos.Source),
		Posting:        NewPostingService(repos.Account, repos.Journal, repos.Source, calc),
		GSTReport:      NewGSTReportService(repos.Source, repos.Reporting, calc),
		Reconciliation: NewReconciliationService(repos.Source),
	}
}

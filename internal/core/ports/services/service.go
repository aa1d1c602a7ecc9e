package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Vendor         VendorSvcFacade
	Posting        PostingSvcFacade
	GSTReport      GSTReportSvcFacade
	Reconciliation ReconciliationSvcFacade
}

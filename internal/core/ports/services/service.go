package services

// ServiceContainer holds instances of all the engine services. This is the
// main entry point for accessing engine functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	Split      SplitSvc
	Allocation AllocationSvc
	Settlement SettlementSvc
	Breakdown  BreakdownSvc
	Currency   CurrencyReaderSvc
}

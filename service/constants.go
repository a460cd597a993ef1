package service

const (
	MaxPrincipal           = 1_000_000_000_000.0 // 1 trillion
	MaxMonthlyContribution = 1_000_000_000_000.0
	MaxAnnualRatePercent   = 1000.0 // 1000% per year
	MaxCompoundsPerYear    = 8760   // hourly
	MaxYears               = 200.0

	// History page sizes
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	cacheKeyPrefix = "projection:"
)

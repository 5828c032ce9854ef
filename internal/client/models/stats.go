package models

import "github.com/shopspring/decimal"

// Stats is the aggregate view over a loan ledger.
type Stats struct {
	TotalOriginalDebt decimal.Decimal
	TotalCurrentDebt  decimal.Decimal
	TotalPaidOff      decimal.Decimal
	// OverallProgress is a percentage in [0, 100].
	OverallProgress float64
	CompletedLoans  int
	TotalLoans      int
}

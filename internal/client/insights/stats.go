package insights

import (
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeStats aggregates loans. Completed loans contribute nothing to the
// current debt. OverallProgress is 0 when there is no original debt.
func ComputeStats(loans []models.Loan) models.Stats {
	s := models.Stats{
		TotalOriginalDebt: decimal.Zero,
		TotalCurrentDebt:  decimal.Zero,
		TotalLoans:        len(loans),
	}

	for _, l := range loans {
		s.TotalOriginalDebt = s.TotalOriginalDebt.Add(l.OriginalBalance)
		if l.IsCompleted {
			s.CompletedLoans++
			continue
		}
		s.TotalCurrentDebt = s.TotalCurrentDebt.Add(l.CurrentBalance)
	}
	s.TotalPaidOff = s.TotalOriginalDebt.Sub(s.TotalCurrentDebt)

	if s.TotalOriginalDebt.IsPositive() {
		p := s.TotalPaidOff.Mul(hundred).Div(s.TotalOriginalDebt).InexactFloat64()
		s.OverallProgress = min(max(p, 0), 100)
	}
	return s
}

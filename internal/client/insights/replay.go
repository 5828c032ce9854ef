package insights

import (
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

// ReplayResult is the balance trajectory re-derived from a loan's original
// balance and its payments.
type ReplayResult struct {
	// Balances[i] is the balance after payment i.
	Balances     []decimal.Decimal
	FinalBalance decimal.Decimal
	// Mismatches lists the indexes of payments whose stored BalanceAfter
	// differs from the replayed balance.
	Mismatches []int
	// BalanceMatches reports whether FinalBalance equals the stored
	// CurrentBalance. Editing a loan breaks this.
	BalanceMatches bool
}

// Consistent reports whether every stored snapshot agrees with the replay.
func (r ReplayResult) Consistent() bool {
	return len(r.Mismatches) == 0 && r.BalanceMatches
}

// Replay applies each payment to the original balance, clamping at zero.
func Replay(l models.Loan) ReplayResult {
	res := ReplayResult{Balances: make([]decimal.Decimal, 0, len(l.Payments))}

	bal := l.OriginalBalance
	for i, p := range l.Payments {
		bal = decimal.Max(bal.Sub(p.Amount), decimal.Zero)
		res.Balances = append(res.Balances, bal)
		if !bal.Equal(p.BalanceAfter) {
			res.Mismatches = append(res.Mismatches, i)
		}
	}
	res.FinalBalance = bal
	res.BalanceMatches = bal.Equal(l.CurrentBalance)
	return res
}

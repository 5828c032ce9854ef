package insights

import (
	"sort"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
)

// Timeline returns every payment across loans, newest date first. Payments
// on the same day keep ledger order: loan order, then recording order.
func Timeline(loans []models.Loan) []models.PaymentEntry {
	var out []models.PaymentEntry
	for _, l := range loans {
		for _, p := range l.Payments {
			out = append(out, models.PaymentEntry{Payment: p, LoanID: l.ID, LoanName: l.Name})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

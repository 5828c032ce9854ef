package insights

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

var (
	avalancheRateThreshold   = decimal.NewFromInt(6)
	snowballBalanceThreshold = decimal.NewFromInt(5000)
	refinanceRateThreshold   = decimal.NewFromInt(5)
	accelerationShare        = decimal.RequireFromString("0.2")
)

// Suggest returns payoff suggestions for the active loans, highest priority
// first. Money in descriptions is rendered with currency.
func Suggest(loans []models.Loan, currency string) []models.Suggestion {
	active := activeByRate(loans)
	if len(active) == 0 {
		return []models.Suggestion{{
			Type:        models.SuggestionCelebration,
			Title:       "Congratulations!",
			Description: "You've paid off all your loans! Consider building an emergency fund or investing.",
			Priority:    models.PriorityHigh,
		}}
	}

	var out []models.Suggestion

	if top := active[0]; top.InterestRate.GreaterThan(avalancheRateThreshold) {
		out = append(out, models.Suggestion{
			Type:        models.SuggestionAvalanche,
			Title:       "Focus on High Interest",
			Description: fmt.Sprintf("Pay extra on %q (%s%% APR) to save the most on interest.", top.Name, top.InterestRate.String()),
			Priority:    models.PriorityHigh,
			LoanID:      top.ID,
		})
	}

	smallest := active[0]
	for _, l := range active[1:] {
		if l.CurrentBalance.LessThan(smallest.CurrentBalance) {
			smallest = l
		}
	}
	if smallest.CurrentBalance.LessThan(snowballBalanceThreshold) {
		out = append(out, models.Suggestion{
			Type:  models.SuggestionSnowball,
			Title: "Quick Win Available",
			Description: fmt.Sprintf("%q has only %s left. Pay it off for a motivation boost!",
				smallest.Name, models.FormatMoney(currency, smallest.CurrentBalance)),
			Priority: models.PriorityMedium,
			LoanID:   smallest.ID,
		})
	}

	extra, months := Acceleration(active)
	out = append(out, models.Suggestion{
		Type:  models.SuggestionAcceleration,
		Title: "Accelerate Progress",
		Description: fmt.Sprintf("Add %s to your monthly payments to pay off loans %d months faster.",
			models.FormatMoney(currency, extra), months),
		Priority: models.PriorityMedium,
	})

	if avg, ok := weightedRate(active); ok && avg.GreaterThan(refinanceRateThreshold) {
		out = append(out, models.Suggestion{
			Type:  models.SuggestionRefinancing,
			Title: "Consider Refinancing",
			Description: fmt.Sprintf("Your average rate is %s%%. Research refinancing options to potentially lower your rates.",
				avg.StringFixed(1)),
			Priority: models.PriorityLow,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// Acceleration proposes paying 20% on top of the summed minimum payments of
// loans (rounded to a whole amount) and estimates how many months sooner
// the combined balance would be cleared. months is 0 when no loan has a
// minimum payment.
func Acceleration(loans []models.Loan) (extra decimal.Decimal, months int) {
	total, minSum := decimal.Zero, decimal.Zero
	for _, l := range loans {
		total = total.Add(l.CurrentBalance)
		minSum = minSum.Add(l.MinPayment)
	}

	extra = minSum.Mul(accelerationShare).Round(0)
	if !minSum.IsPositive() {
		return extra, 0
	}

	without := total.Div(minSum).Ceil().IntPart()
	with := total.Div(minSum.Add(extra)).Ceil().IntPart()
	return extra, int(max(without-with, 0))
}

func activeByRate(loans []models.Loan) []models.Loan {
	var active []models.Loan
	for _, l := range loans {
		if !l.IsCompleted {
			active = append(active, l)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].InterestRate.GreaterThan(active[j].InterestRate)
	})
	return active
}

// weightedRate is the balance-weighted average interest rate. It reports
// false when the loans carry no balance.
func weightedRate(loans []models.Loan) (decimal.Decimal, bool) {
	weighted, balance := decimal.Zero, decimal.Zero
	for _, l := range loans {
		weighted = weighted.Add(l.InterestRate.Mul(l.CurrentBalance))
		balance = balance.Add(l.CurrentBalance)
	}
	if !balance.IsPositive() {
		return decimal.Zero, false
	}
	return weighted.Div(balance), true
}

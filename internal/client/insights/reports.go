package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/common"
	"github.com/shopspring/decimal"
)

var (
	outstandingMonthTotal = decimal.NewFromInt(1000)
	busyMonthPayments     = 5
)

// MonthlyReport summarises the payments dated within month ("YYYY-MM").
func MonthlyReport(loans []models.Loan, month string, currency string) (models.MonthlyReport, error) {
	if _, err := time.Parse(common.MonthLayout, month); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("%w: %q", common.ErrInvalidMonth, month)
	}

	r := models.MonthlyReport{
		Month:      month,
		TotalPaid:  decimal.Zero,
		AvgPayment: decimal.Zero,
	}

	minByLoan := make(map[string]decimal.Decimal, len(loans))
	worked := make(map[string]struct{})
	for _, l := range loans {
		minByLoan[l.ID] = l.MinPayment
		for _, p := range l.Payments {
			if !strings.HasPrefix(p.Date, month) {
				continue
			}
			r.Payments = append(r.Payments, models.PaymentEntry{Payment: p, LoanID: l.ID, LoanName: l.Name})
			r.TotalPaid = r.TotalPaid.Add(p.Amount)
			worked[l.ID] = struct{}{}
			if p.BalanceAfter.IsZero() {
				r.CompletedThisMonth++
			}
		}
	}

	r.PaymentCount = len(r.Payments)
	r.LoansWorkedOn = len(worked)
	if r.PaymentCount > 0 {
		r.AvgPayment = r.TotalPaid.Div(decimal.NewFromInt(int64(r.PaymentCount))).Round(2)
	}
	r.Insights = monthInsights(r, minByLoan, currency)
	return r, nil
}

func monthInsights(r models.MonthlyReport, minByLoan map[string]decimal.Decimal, currency string) []models.Insight {
	if r.PaymentCount == 0 {
		return []models.Insight{{Type: models.InsightInfo, Text: "No payments recorded this month"}}
	}

	var out []models.Insight
	if r.TotalPaid.GreaterThan(outstandingMonthTotal) {
		out = append(out, models.Insight{
			Type: models.InsightSuccess,
			Text: fmt.Sprintf("Outstanding month! You paid %s toward your loans.", models.FormatMoney(currency, r.TotalPaid)),
		})
	}
	if r.CompletedThisMonth > 0 {
		out = append(out, models.Insight{
			Type: models.InsightCelebration,
			Text: "You completed a loan this month! Incredible progress!",
		})
	}

	extra, extraPayments := decimal.Zero, 0
	for _, p := range r.Payments {
		if m := minByLoan[p.LoanID]; p.Amount.GreaterThan(m) {
			extra = extra.Add(p.Amount.Sub(m))
			extraPayments++
		}
	}
	if extraPayments > 0 {
		out = append(out, models.Insight{
			Type: models.InsightSuccess,
			Text: fmt.Sprintf("You paid an extra %s above minimums!", models.FormatMoney(currency, extra)),
		})
	}

	if r.PaymentCount >= busyMonthPayments {
		out = append(out, models.Insight{
			Type: models.InsightInfo,
			Text: fmt.Sprintf("High activity month with %d payments made.", r.PaymentCount),
		})
	}
	return out
}

// AvailableMonths lists the months that have at least one payment, newest
// first.
func AvailableMonths(loans []models.Loan) []string {
	seen := make(map[string]struct{})
	for _, l := range loans {
		for _, p := range l.Payments {
			if len(p.Date) >= len(common.MonthLayout) {
				seen[p.Date[:len(common.MonthLayout)]] = struct{}{}
			}
		}
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

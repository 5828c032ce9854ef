package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func loanProgress(l models.Loan) string {
	if !l.OriginalBalance.IsPositive() {
		return "-"
	}
	paid := l.OriginalBalance.Sub(l.CurrentBalance)
	return paid.Mul(decimal.NewFromInt(100)).Div(l.OriginalBalance).StringFixed(1) + "%"
}

func (a *App) renderLoans(loans []models.Loan) {
	w := a.table()
	fmt.Fprintln(w, "#\tID\tNAME\tBALANCE\tORIGINAL\tRATE\tMIN\tPROGRESS\tSTATUS")
	for i, l := range loans {
		status := "active"
		if l.IsCompleted {
			status = "paid off " + l.CompletedDate
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s%%\t%s\t%s\t%s\n",
			i+1, shortID(l.ID), l.Name,
			a.money(l.CurrentBalance), a.money(l.OriginalBalance),
			l.InterestRate.String(), a.money(l.MinPayment),
			loanProgress(l), status)
	}
	_ = w.Flush()
}

func (a *App) renderStats(s models.Stats) {
	w := a.table()
	fmt.Fprintf(w, "Total original debt:\t%s\n", a.money(s.TotalOriginalDebt))
	fmt.Fprintf(w, "Remaining debt:\t%s\n", a.money(s.TotalCurrentDebt))
	fmt.Fprintf(w, "Paid off:\t%s\n", a.money(s.TotalPaidOff))
	fmt.Fprintf(w, "Overall progress:\t%.1f%%\n", s.OverallProgress)
	fmt.Fprintf(w, "Loans completed:\t%d of %d\n", s.CompletedLoans, s.TotalLoans)
	_ = w.Flush()
}

func (a *App) renderAchievements(earned []models.AchievementView, total int) {
	fmt.Fprintf(a.out, "Achievements: %d of %d earned\n", len(earned), total)
	w := a.table()
	for _, e := range earned {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Title, e.Description, models.FormatDate(e.EarnedAt))
	}
	_ = w.Flush()
}

func (a *App) renderSuggestions(list []models.Suggestion) {
	for _, s := range list {
		fmt.Fprintf(a.out, "[%s] %s\n    %s\n", s.Priority, s.Title, s.Description)
	}
}

func (a *App) renderReport(r models.MonthlyReport, months []string) {
	fmt.Fprintf(a.out, "Report for %s\n", r.Month)
	if len(months) > 0 {
		fmt.Fprintf(a.out, "Months with payments: %s\n", strings.Join(months, ", "))
	}

	w := a.table()
	fmt.Fprintf(w, "Total paid:\t%s\n", a.money(r.TotalPaid))
	fmt.Fprintf(w, "Payments:\t%d\n", r.PaymentCount)
	fmt.Fprintf(w, "Average payment:\t%s\n", a.money(r.AvgPayment))
	fmt.Fprintf(w, "Loans worked on:\t%d\n", r.LoansWorkedOn)
	fmt.Fprintf(w, "Loans completed:\t%d\n", r.CompletedThisMonth)
	_ = w.Flush()

	for _, in := range r.Insights {
		fmt.Fprintf(a.out, "  (%s) %s\n", in.Type, in.Text)
	}
	if len(r.Payments) > 0 {
		fmt.Fprintln(a.out)
		a.renderTimeline(r.Payments)
	}
}

func (a *App) renderTimeline(entries []models.PaymentEntry) {
	w := a.table()
	fmt.Fprintln(w, "DATE\tLOAN\tAMOUNT\tBALANCE AFTER")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date, e.LoanName, a.money(e.Amount), a.money(e.BalanceAfter))
	}
	_ = w.Flush()
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/insights"
	"github.com/dmitrijs2005/loankeeper/internal/common"
)

// nowFn is a test seam for the default report month.
var nowFn = time.Now

// Stats prints the aggregate view of the ledger.
func (a *App) Stats(ctx context.Context) error {
	loans, err := a.loans(ctx)
	if err != nil {
		return err
	}
	a.renderStats(insights.ComputeStats(loans))
	return nil
}

// Achievements lists earned achievements; "rebuild" re-derives the cache
// from the ledger first.
func (a *App) Achievements(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}

	var err error
	if len(args) > 0 && args[0] == "rebuild" {
		_, err = a.achievements.Rebuild(ctx, a.username())
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Achievements rebuilt from your loans.")
	}

	earned, err := a.achievements.List(ctx, a.username())
	if err != nil {
		return err
	}
	a.renderAchievements(earned, len(insights.Achievements()))
	return nil
}

// Suggest prints payoff suggestions for the active loans.
func (a *App) Suggest(ctx context.Context) error {
	loans, err := a.loans(ctx)
	if err != nil {
		return err
	}
	a.renderSuggestions(insights.Suggest(loans, a.currency()))
	return nil
}

// Report prints the monthly report for the given month, or for the most
// recent month with payments.
func (a *App) Report(ctx context.Context, args []string) error {
	loans, err := a.loans(ctx)
	if err != nil {
		return err
	}

	months := insights.AvailableMonths(loans)
	month := nowFn().Format(common.MonthLayout)
	if len(months) > 0 {
		month = months[0]
	}
	if len(args) > 0 {
		month = args[0]
	}

	r, err := insights.MonthlyReport(loans, month, a.currency())
	if err != nil {
		return err
	}
	a.renderReport(r, months)
	return nil
}

// Timeline prints every payment, newest first.
func (a *App) Timeline(ctx context.Context) error {
	loans, err := a.loans(ctx)
	if err != nil {
		return err
	}
	entries := insights.Timeline(loans)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No payments yet.")
		return nil
	}
	a.renderTimeline(entries)
	return nil
}

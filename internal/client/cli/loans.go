package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/common"
)

var errNoLoanRef = errors.New("specify a loan by list number or id")

// minIDPrefix is the shortest numeric reference treated as an id prefix
// rather than a list number.
const minIDPrefix = 8

func (a *App) loans(ctx context.Context) ([]models.Loan, error) {
	if !a.isLoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	return a.ledger.Loans(ctx, a.username())
}

// resolveLoan finds the loan named by ref: a 1-based position in the last
// list, a full id, or a unique id prefix. Short numeric refs are list
// positions only.
func (a *App) resolveLoan(ctx context.Context, args []string) (models.Loan, error) {
	if len(args) == 0 {
		return models.Loan{}, errNoLoanRef
	}
	ref := args[0]

	loans, err := a.loans(ctx)
	if err != nil {
		return models.Loan{}, err
	}

	id := ref
	if n, err := strconv.Atoi(ref); err == nil && len(ref) < minIDPrefix {
		if n < 1 || n > len(a.lastList) {
			return models.Loan{}, fmt.Errorf("%w: no loan #%d in the last list", common.ErrLoanNotFound, n)
		}
		id = a.lastList[n-1]
	}

	var match []models.Loan
	for _, l := range loans {
		if l.ID == id {
			return l, nil
		}
		if strings.HasPrefix(l.ID, id) {
			match = append(match, l)
		}
	}
	if len(match) == 1 {
		return match[0], nil
	}
	if len(match) > 1 {
		return models.Loan{}, fmt.Errorf("%q matches %d loans, use a longer id", ref, len(match))
	}
	return models.Loan{}, common.ErrLoanNotFound
}

// List prints the ledger and remembers the order for numeric references.
func (a *App) List(ctx context.Context) error {
	loans, err := a.loans(ctx)
	if err != nil {
		return err
	}

	a.lastList = a.lastList[:0]
	for _, l := range loans {
		a.lastList = append(a.lastList, l.ID)
	}

	if len(loans) == 0 {
		fmt.Fprintln(a.out, "No loans yet. Use 'add' to record one.")
		return nil
	}
	a.renderLoans(loans)
	return nil
}

func (a *App) readLoanInput(defaults *models.Loan) (models.LoanInput, error) {
	ask := func(prompt, current string) (string, error) {
		if defaults != nil {
			prompt = fmt.Sprintf("%s [%s]", prompt, current)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if v == "" && defaults != nil {
			return current, nil
		}
		return v, nil
	}

	var cur models.Loan
	if defaults != nil {
		cur = *defaults
	}

	var in models.LoanInput
	var err error
	if in.Name, err = ask("Loan name", cur.Name); err != nil {
		return in, err
	}
	if in.OriginalBalance, err = ask("Original balance", cur.OriginalBalance.String()); err != nil {
		return in, err
	}
	if in.CurrentBalance, err = ask("Current balance", cur.CurrentBalance.String()); err != nil {
		return in, err
	}
	if in.InterestRate, err = ask("Interest rate (% APR, optional)", cur.InterestRate.String()); err != nil {
		return in, err
	}
	if in.MinPayment, err = ask("Minimum monthly payment (optional)", cur.MinPayment.String()); err != nil {
		return in, err
	}
	return in, nil
}

// Add prompts for the loan fields and records a new loan.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	in, err := a.readLoanInput(nil)
	if err != nil {
		return err
	}

	l, err := a.ledger.AddLoan(ctx, a.username(), in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q (%s).\n", l.Name, a.money(l.CurrentBalance))
	a.afterMutation(ctx)
	return nil
}

// Edit prompts for new values, showing the current ones as defaults.
func (a *App) Edit(ctx context.Context, args []string) error {
	l, err := a.resolveLoan(ctx, args)
	if err != nil {
		return err
	}
	in, err := a.readLoanInput(&l)
	if err != nil {
		return err
	}

	edited, err := a.ledger.EditLoan(ctx, a.username(), l.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %q.\n", edited.Name)
	a.afterMutation(ctx)
	return nil
}

// Pay records a payment. Without an amount argument the user is asked for
// one, with the loan's minimum payment shown as a hint.
func (a *App) Pay(ctx context.Context, args []string) error {
	l, err := a.resolveLoan(ctx, args)
	if err != nil {
		return err
	}

	var amount string
	if len(args) > 1 {
		amount = args[1]
	} else {
		prompt := fmt.Sprintf("Payment amount for %q (balance %s, minimum %s)",
			l.Name, a.money(l.CurrentBalance), a.money(l.MinPayment))
		if amount, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return err
		}
	}

	res, err := a.ledger.MakePayment(ctx, a.username(), l.ID, amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Paid %s on %q. Remaining balance: %s.\n",
		a.money(res.Payment.Amount), res.Loan.Name, a.money(res.Loan.CurrentBalance))
	if res.Completed {
		fmt.Fprintf(a.out, "*** Congratulations! %q is paid off! ***\n", res.Loan.Name)
	}
	a.afterMutation(ctx)
	return nil
}

// Delete removes a loan after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	l, err := a.resolveLoan(ctx, args)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete %q and its %d payments?", l.Name, len(l.Payments)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.ledger.DeleteLoan(ctx, a.username(), l.ID); err != nil {
		return err
	}
	a.lastList = nil
	fmt.Fprintf(a.out, "Deleted %q.\n", l.Name)
	a.afterMutation(ctx)
	return nil
}

// afterMutation refreshes the achievement cache and announces new ones.
// Failures are logged; the mutation itself already succeeded.
func (a *App) afterMutation(ctx context.Context) {
	fresh, err := a.achievements.Refresh(ctx, a.username())
	if err != nil {
		a.log.Warn(ctx, "failed to refresh achievements", "error", err)
		return
	}
	for _, ach := range fresh {
		fmt.Fprintf(a.out, "Achievement unlocked: %s (%s)\n", ach.Title, ach.Description)
	}
}

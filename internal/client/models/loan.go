package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/common"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Loan is one record of a user's loan ledger. Payments are append-only and
// ordered by the time they were made.
type Loan struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	OriginalBalance decimal.Decimal `json:"originalBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	MinPayment      decimal.Decimal `json:"minPayment"`
	IsCompleted     bool            `json:"isCompleted"`
	CompletedDate   string          `json:"completedDate,omitempty"`
	Payments        []Payment       `json:"payments"`
}

// Payment is an immutable entry in a loan's history. BalanceAfter is the
// loan balance right after the payment was applied.
type Payment struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// LoanInput carries the raw, unparsed loan fields as typed by the user.
type LoanInput struct {
	Name            string
	OriginalBalance string
	CurrentBalance  string
	InterestRate    string
	MinPayment      string
}

// Clone returns a deep copy so callers can mutate the result freely.
func (l Loan) Clone() Loan {
	c := l
	c.Payments = append([]Payment(nil), l.Payments...)
	return c
}

// TotalPaid sums every payment amount recorded against the loan.
func (l Loan) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// FormatDate renders t as a calendar day in its own location.
func FormatDate(t time.Time) string {
	return t.Format(common.DateLayout)
}

// FormatMoney renders d with two decimals, thousands separators and the
// given currency symbol, e.g. "$1,234.50" or "-$12.00". Amounts that round
// to zero are never signed.
func FormatMoney(symbol string, d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	_, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + symbol + humanize.BigComma(d.Truncate(0).BigInt()) + "." + frac
}

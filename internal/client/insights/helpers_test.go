package insights

import (
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func loan(id, name, original, current, rate, minPay string, payments ...models.Payment) models.Loan {
	l := models.Loan{
		ID:              id,
		Name:            name,
		OriginalBalance: d(original),
		CurrentBalance:  d(current),
		InterestRate:    d(rate),
		MinPayment:      d(minPay),
		Payments:        payments,
	}
	l.IsCompleted = l.CurrentBalance.IsZero()
	return l
}

func pay(id, amount, date, after string) models.Payment {
	return models.Payment{ID: id, Amount: d(amount), Date: date, BalanceAfter: d(after)}
}

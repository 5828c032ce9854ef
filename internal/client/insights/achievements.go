package insights

import (
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/shopspring/decimal"
)

type achievementRule struct {
	models.Achievement
	check func(loans []models.Loan, stats models.Stats) bool
}

var bigPayment = decimal.NewFromInt(1000)

var achievementRules = []achievementRule{
	{
		Achievement: models.Achievement{ID: "first_payment", Title: "First Step", Description: "Made your first payment"},
		check:       func(loans []models.Loan, _ models.Stats) bool { return paymentCount(loans) > 0 },
	},
	{
		Achievement: models.Achievement{ID: "consistent_payer", Title: "Consistent Payer", Description: "Made 5 payments"},
		check:       func(loans []models.Loan, _ models.Stats) bool { return paymentCount(loans) >= 5 },
	},
	{
		Achievement: models.Achievement{ID: "debt_destroyer", Title: "Debt Destroyer", Description: "Made 20 payments"},
		check:       func(loans []models.Loan, _ models.Stats) bool { return paymentCount(loans) >= 20 },
	},
	{
		Achievement: models.Achievement{ID: "quarter_progress", Title: "Quarter Way There", Description: "Reached 25% total progress"},
		check:       func(_ []models.Loan, s models.Stats) bool { return s.OverallProgress >= 25 },
	},
	{
		Achievement: models.Achievement{ID: "halfway_hero", Title: "Halfway Hero", Description: "Reached 50% total progress"},
		check:       func(_ []models.Loan, s models.Stats) bool { return s.OverallProgress >= 50 },
	},
	{
		Achievement: models.Achievement{ID: "almost_there", Title: "Almost There", Description: "Reached 75% total progress"},
		check:       func(_ []models.Loan, s models.Stats) bool { return s.OverallProgress >= 75 },
	},
	{
		Achievement: models.Achievement{ID: "first_loan_complete", Title: "Loan Crusher", Description: "Paid off your first loan"},
		check: func(loans []models.Loan, _ models.Stats) bool {
			for _, l := range loans {
				if l.IsCompleted {
					return true
				}
			}
			return false
		},
	},
	{
		Achievement: models.Achievement{ID: "big_payment", Title: "Big Spender", Description: "Made a payment of $1,000 or more"},
		check: func(loans []models.Loan, _ models.Stats) bool {
			return anyPayment(loans, func(_ models.Loan, p models.Payment) bool {
				return p.Amount.GreaterThanOrEqual(bigPayment)
			})
		},
	},
	{
		Achievement: models.Achievement{ID: "debt_free", Title: "DEBT FREE!", Description: "Paid off ALL loans!"},
		check: func(loans []models.Loan, _ models.Stats) bool {
			if len(loans) == 0 {
				return false
			}
			for _, l := range loans {
				if !l.IsCompleted {
					return false
				}
			}
			return true
		},
	},
	{
		Achievement: models.Achievement{ID: "early_bird", Title: "Early Bird", Description: "Made a payment above minimum"},
		check: func(loans []models.Loan, _ models.Stats) bool {
			return anyPayment(loans, func(l models.Loan, p models.Payment) bool {
				return p.Amount.GreaterThan(l.MinPayment)
			})
		},
	},
}

// Achievements returns the rule table definitions in display order.
func Achievements() []models.Achievement {
	out := make([]models.Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, r.Achievement)
	}
	return out
}

// AchievementByID looks up a definition.
func AchievementByID(id string) (models.Achievement, bool) {
	for _, r := range achievementRules {
		if r.ID == id {
			return r.Achievement, true
		}
	}
	return models.Achievement{}, false
}

// EvaluateAchievements returns the ids of every rule the ledger currently
// satisfies, in rule table order.
func EvaluateAchievements(loans []models.Loan, stats models.Stats) []string {
	var ids []string
	for _, r := range achievementRules {
		if r.check(loans, stats) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func paymentCount(loans []models.Loan) int {
	n := 0
	for _, l := range loans {
		n += len(l.Payments)
	}
	return n
}

func anyPayment(loans []models.Loan, fn func(models.Loan, models.Payment) bool) bool {
	for _, l := range loans {
		for _, p := range l.Payments {
			if fn(l, p) {
				return true
			}
		}
	}
	return false
}

package models

import "github.com/shopspring/decimal"

// PaymentEntry is a payment annotated with the loan it was made against.
type PaymentEntry struct {
	Payment
	LoanID   string
	LoanName string
}

// InsightType classifies a monthly report remark.
type InsightType string

const (
	InsightInfo        InsightType = "info"
	InsightSuccess     InsightType = "success"
	InsightCelebration InsightType = "celebration"
)

// Insight is a short remark attached to a monthly report.
type Insight struct {
	Type InsightType
	Text string
}

// MonthlyReport summarises the payments made in one calendar month.
type MonthlyReport struct {
	Month              string
	Payments           []PaymentEntry
	TotalPaid          decimal.Decimal
	AvgPayment         decimal.Decimal
	PaymentCount       int
	LoansWorkedOn      int
	CompletedThisMonth int
	Insights           []Insight
}

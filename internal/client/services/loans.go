package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/insights"
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/common"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentResult is the outcome of MakePayment. Completed is true only for
// the payment that first brought the loan to a zero balance.
type PaymentResult struct {
	Loan      models.Loan
	Payment   models.Payment
	Completed bool
}

// LedgerService manages a user's loans and their payments.
type LedgerService interface {
	AddLoan(ctx context.Context, username string, in models.LoanInput) (*models.Loan, error)
	EditLoan(ctx context.Context, username, loanID string, in models.LoanInput) (*models.Loan, error)
	MakePayment(ctx context.Context, username, loanID, amount string) (*PaymentResult, error)
	DeleteLoan(ctx context.Context, username, loanID string) error
	Loans(ctx context.Context, username string) ([]models.Loan, error)
	Stats(ctx context.Context, username string) (models.Stats, error)
}

type ledgerService struct {
	store kv.Store
	log   logging.Logger
	now   func() time.Time
	newID func() string
}

// NewLedgerService constructs a LedgerService over store.
func NewLedgerService(store kv.Store, log logging.Logger) LedgerService {
	return &ledgerService{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *ledgerService) load(ctx context.Context, username string) ([]models.Loan, error) {
	var loans []models.Loan
	if _, err := kv.GetJSON(ctx, s.store, kv.LoansKey(username), &loans); err != nil {
		return nil, fmt.Errorf("load loans: %w", err)
	}
	return loans, nil
}

func (s *ledgerService) save(ctx context.Context, username string, loans []models.Loan) error {
	if loans == nil {
		loans = []models.Loan{}
	}
	if err := kv.SetJSON(ctx, s.store, kv.LoansKey(username), loans); err != nil {
		return fmt.Errorf("save loans: %w", err)
	}
	return nil
}

func indexOf(loans []models.Loan, id string) int {
	for i := range loans {
		if loans[i].ID == id {
			return i
		}
	}
	return -1
}

// loanFields is a validated LoanInput.
type loanFields struct {
	name            string
	originalBalance decimal.Decimal
	currentBalance  decimal.Decimal
	interestRate    decimal.Decimal
	minPayment      decimal.Decimal
}

func parseLoanInput(in models.LoanInput) (loanFields, error) {
	var f loanFields

	f.name = strings.TrimSpace(in.Name)
	if f.name == "" {
		return f, fmt.Errorf("%w: name is required", common.ErrInvalidLoanData)
	}

	var err error
	if f.originalBalance, err = parseRequired("original balance", in.OriginalBalance); err != nil {
		return f, err
	}
	if f.currentBalance, err = parseRequired("current balance", in.CurrentBalance); err != nil {
		return f, err
	}
	if f.currentBalance.GreaterThan(f.originalBalance) {
		return f, fmt.Errorf("%w: current balance exceeds original balance", common.ErrInvalidLoanData)
	}
	if f.interestRate, err = parseOptional("interest rate", in.InterestRate); err != nil {
		return f, err
	}
	if f.minPayment, err = parseOptional("minimum payment", in.MinPayment); err != nil {
		return f, err
	}
	return f, nil
}

func parseRequired(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", common.ErrInvalidLoanData, field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", common.ErrInvalidLoanData, field)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidLoanData, field)
	}
	return v, nil
}

// parseOptional treats blank and unparsable input as zero.
func parseOptional(field, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, nil
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidLoanData, field)
	}
	return v, nil
}

func (s *ledgerService) AddLoan(ctx context.Context, username string, in models.LoanInput) (*models.Loan, error) {
	f, err := parseLoanInput(in)
	if err != nil {
		return nil, err
	}

	loans, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}

	loan := models.Loan{
		ID:              s.newID(),
		Name:            f.name,
		OriginalBalance: f.originalBalance,
		CurrentBalance:  f.currentBalance,
		InterestRate:    f.interestRate,
		MinPayment:      f.minPayment,
		Payments:        []models.Payment{},
	}
	if loan.CurrentBalance.IsZero() {
		loan.IsCompleted = true
		loan.CompletedDate = models.FormatDate(s.now())
	}

	if err := s.save(ctx, username, append(loans, loan)); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "loan added", "username", username, "loan_id", loan.ID)
	return &loan, nil
}

// EditLoan overwrites the descriptive and balance fields only. Completion
// state and payments are left as they are, even when the new balance is 0.
func (s *ledgerService) EditLoan(ctx context.Context, username, loanID string, in models.LoanInput) (*models.Loan, error) {
	loans, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return nil, common.ErrLoanNotFound
	}

	f, err := parseLoanInput(in)
	if err != nil {
		return nil, err
	}

	loan := loans[i].Clone()
	loan.Name = f.name
	loan.OriginalBalance = f.originalBalance
	loan.CurrentBalance = f.currentBalance
	loan.InterestRate = f.interestRate
	loan.MinPayment = f.minPayment
	loans[i] = loan

	if err := s.save(ctx, username, loans); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "loan edited", "username", username, "loan_id", loanID)
	return &loan, nil
}

// MakePayment applies amount to the loan, clamping the balance at zero.
// Paying an already completed loan is allowed and records another payment.
func (s *ledgerService) MakePayment(ctx context.Context, username, loanID, amount string) (*PaymentResult, error) {
	loans, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return nil, common.ErrLoanNotFound
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !value.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	loan := loans[i].Clone()
	newBalance := decimal.Max(loan.CurrentBalance.Sub(value), decimal.Zero)
	today := models.FormatDate(s.now())

	payment := models.Payment{
		ID:           s.newID(),
		Amount:       value,
		Date:         today,
		BalanceAfter: newBalance,
	}
	loan.CurrentBalance = newBalance
	loan.Payments = append(loan.Payments, payment)

	completed := false
	if newBalance.IsZero() && !loan.IsCompleted {
		loan.IsCompleted = true
		loan.CompletedDate = today
		completed = true
	}
	loans[i] = loan

	if err := s.save(ctx, username, loans); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "payment recorded",
		"username", username, "loan_id", loanID, "amount", value.String(), "balance_after", newBalance.String())
	if completed {
		s.log.Info(ctx, "loan completed", "username", username, "loan_id", loanID)
	}
	return &PaymentResult{Loan: loan, Payment: payment, Completed: completed}, nil
}

// DeleteLoan removes the loan and its payments. Unknown ids are ignored.
func (s *ledgerService) DeleteLoan(ctx context.Context, username, loanID string) error {
	loans, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		s.log.Debug(ctx, "delete of unknown loan ignored", "loan_id", loanID)
		return nil
	}

	loans = append(loans[:i], loans[i+1:]...)
	if err := s.save(ctx, username, loans); err != nil {
		return err
	}

	s.log.Info(ctx, "loan deleted", "username", username, "loan_id", loanID)
	return nil
}

func (s *ledgerService) Loans(ctx context.Context, username string) ([]models.Loan, error) {
	return s.load(ctx, username)
}

func (s *ledgerService) Stats(ctx context.Context, username string) (models.Stats, error) {
	loans, err := s.load(ctx, username)
	if err != nil {
		return models.Stats{}, err
	}
	return insights.ComputeStats(loans), nil
}

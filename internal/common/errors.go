// Package common defines shared constants, helpers and sentinel errors used
// across the client layers of LoanKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Credential store errors.
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUserData    = errors.New("please fill in all required fields")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Loan ledger errors.
	ErrInvalidLoanData = errors.New("invalid loan data")
	ErrLoanNotFound    = errors.New("loan not found")
	ErrInvalidAmount   = errors.New("payment amount must be a positive number")

	// Report errors.
	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")
)

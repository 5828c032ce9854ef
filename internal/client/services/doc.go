// Package services contains the application services of the LoanKeeper
// client: the credential store and session (AuthService), the loan ledger
// (LedgerService) and the achievement cache (AchievementService).
//
// Services own no state beyond a kv.Store. Each mutation loads the
// affected document, changes it in memory, validates, then writes the
// whole document back. Failures leave the stored document untouched.
package services

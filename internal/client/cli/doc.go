// Package cli provides the interactive LoanKeeper command-line client.
//
// It wires configuration, storage and the application services into a
// read-eval-print loop. On start the persisted session, if any, is restored
// so a returning user lands directly in their ledger.
//
// Key features:
//   - Register / Login / Logout
//   - Add, edit, pay and delete loans
//   - Statistics, achievements, payoff suggestions
//   - Monthly reports and the payment timeline
//
// Loans are referred to by their position in the last list, by full id, or
// by a unique id prefix. The REPL is started via App.Run(ctx), which blocks
// until the user exits or input ends.
package cli

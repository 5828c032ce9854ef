// Package insights derives read-only views from a loan ledger: aggregate
// statistics, achievements, payoff suggestions, monthly reports, the
// payment timeline and a balance replay check.
//
// Every function is pure. Callers load the ledger, pass it in, and may
// throw the result away at any time.
package insights

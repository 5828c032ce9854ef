package models

// SuggestionType classifies a payoff suggestion.
type SuggestionType string

const (
	SuggestionCelebration  SuggestionType = "celebration"
	SuggestionAvalanche    SuggestionType = "avalanche"
	SuggestionSnowball     SuggestionType = "snowball"
	SuggestionAcceleration SuggestionType = "acceleration"
	SuggestionRefinancing  SuggestionType = "refinancing"
)

// Priority orders suggestions; higher values come first.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Suggestion is a single payoff recommendation. LoanID is set when the
// suggestion targets one loan.
type Suggestion struct {
	Type        SuggestionType
	Title       string
	Description string
	Priority    Priority
	LoanID      string
}

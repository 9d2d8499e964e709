package models

import "strings"

// PayeeType distinguishes who received or made an expense.
type PayeeType int

// PayeeTypePlayer marks an expense whose payee_id references a player.
// Every other value is a non-player party such as the team itself.
const PayeeTypePlayer PayeeType = 1

// ExpenseType distinguishes money coming in from money going out.
type ExpenseType int

// ExpenseTypeContribution marks a payment into the team. Every other value
// is an expenditure.
const ExpenseTypeContribution ExpenseType = 1

// CurrencySymbol prefixes amounts in the human readable due lists.
const CurrencySymbol = "₹"

// DueListSeparator joins entries of a due list.
const DueListSeparator = ", "

// CompletionFilter restricts a tournament listing by completion state.
type CompletionFilter int

const (
	CompletionAny CompletionFilter = iota
	CompletionCompleted
	CompletionPending
)

// ParseCompletionFilter maps the isactive query value onto a filter.
// Only the exact strings "true" and "false" filter; anything else, including
// an absent value, lists every tournament.
func ParseCompletionFilter(isActive string) CompletionFilter {
	switch isActive {
	case "true":
		return CompletionCompleted
	case "false":
		return CompletionPending
	default:
		return CompletionAny
	}
}

// Matches reports whether a tournament with the given completion flag passes the filter.
func (f CompletionFilter) Matches(isCompleted bool) bool {
	switch f {
	case CompletionCompleted:
		return isCompleted
	case CompletionPending:
		return !isCompleted
	default:
		return true
	}
}

func (f CompletionFilter) String() string {
	switch f {
	case CompletionCompleted:
		return "completed"
	case CompletionPending:
		return "pending"
	default:
		return "any"
	}
}

// FormatDue renders a single "name ₹amount" entry of a due list.
func FormatDue(name, amount string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" ")
	b.WriteString(CurrencySymbol)
	b.WriteString(amount)
	return b.String()
}

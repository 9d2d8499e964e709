package models

import "time"

// Player represents a squad member and the advance balance they carry.
// A positive advance means the player owes the team, a negative one means
// the team owes the player.
type Player struct {
	ID            int64      `db:"player_id" json:"player_id"`
	Name          string     `db:"player_name" json:"player_name"`
	Mobile        *string    `db:"player_mobile_no" json:"player_mobile_no"`
	AdvanceAmount NullAmount `db:"player_advance_amount" json:"player_advance_amount"`
	LastPaidDate  *time.Time `db:"player_last_paid_date" json:"player_last_paid_date"`
	IsActive      bool       `db:"player_is_active" json:"player_is_active"`
}

// OwesTeam reports whether the player has an outstanding advance due to the team.
func (p Player) OwesTeam() bool {
	return p.AdvanceAmount.Valid && p.AdvanceAmount.Decimal.IsPositive()
}

// IsOwed reports whether the team owes the player money.
func (p Player) IsOwed() bool {
	return p.AdvanceAmount.Valid && p.AdvanceAmount.Decimal.IsNegative()
}

// IsSettled reports whether the player's advance is exactly zero.
// A player with no recorded advance is neither settled nor due.
func (p Player) IsSettled() bool {
	return p.AdvanceAmount.Valid && p.AdvanceAmount.Decimal.IsZero()
}

// Expense represents a single money movement attributed to an accounting month.
// MonthYear is the period the expense counts towards and may differ from the
// calendar month of SpentDate.
type Expense struct {
	ID          int64       `db:"expense_id" json:"expense_id"`
	PayeeType   PayeeType   `db:"expense_payee_type" json:"expense_payee_type"`
	PayeeID     *int64      `db:"expense_payee_id" json:"expense_payee_id"`
	Amount      Amount      `db:"expense_amount" json:"expense_amount"`
	SpentDate   time.Time   `db:"expense_spent_date" json:"expense_spent_date"`
	MonthYear   time.Time   `db:"expense_month_year" json:"expense_month_year"`
	Type        ExpenseType `db:"expense_type" json:"expense_type"`
	Description *string     `db:"expense_description" json:"expense_description"`
}

// IsPlayerContribution reports whether the expense is a payment made by a player
// into the team pot.
func (e Expense) IsPlayerContribution() bool {
	return e.PayeeType == PayeeTypePlayer && e.Type == ExpenseTypeContribution
}

// Tournament holds the entry and prize accounting for one event. The amount
// columns are caller supplied and never recomputed.
type Tournament struct {
	ID            int64      `db:"tournament_id" json:"tournament_id"`
	Name          string     `db:"tournament_name" json:"tournament_name"`
	EntryFee      NullAmount `db:"tournament_entry_fee" json:"tournament_entry_fee"`
	AmountPaid    NullAmount `db:"tournament_amount_paid" json:"tournament_amount_paid"`
	AmountBalance NullAmount `db:"tournament_amount_balance" json:"tournament_amount_balance"`
	AmountWon     NullAmount `db:"tournament_amount_won" json:"tournament_amount_won"`
	Description   *string    `db:"tournament_description" json:"tournament_description"`
	IsCompleted   bool       `db:"tournament_iscompleted" json:"tournament_iscompleted"`
}

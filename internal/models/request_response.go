package models

// Request models. Fields are pointers so that an omitted field reaches the
// store as NULL and is rejected there rather than silently defaulted.
type ExpenseRequest struct {
	PayeeType   *PayeeType   `json:"expense_payee_type"`
	PayeeID     *Integer     `json:"expense_payee_id"`
	Amount      *Amount      `json:"expense_amount"`
	SpentDate   *Text        `json:"expense_spent_date"`
	MonthYear   *Text        `json:"expense_month_year"`
	Type        *ExpenseType `json:"expense_type"`
	Description *Text        `json:"expense_description"`
}

type TournamentRequest struct {
	Name          *Text    `json:"tournament_name"`
	EntryFee      *Amount  `json:"tournament_entry_fee"`
	AmountPaid    *Amount  `json:"tournament_amount_paid"`
	AmountBalance *Amount  `json:"tournament_amount_balance"`
	AmountWon     *Amount  `json:"tournament_amount_won"`
	Description   *Text    `json:"tournament_description"`
	IsCompleted   *Boolean `json:"tournament_iscompleted"`
}

// PlayerRequest is shared by create, update and upsert. ID is only read by
// the upsert endpoint; Advance and LastPaid leave the stored value untouched
// when omitted on update.
type PlayerRequest struct {
	ID       *Integer `json:"id,omitempty"`
	Name     *Text    `json:"name"`
	Mobile   *Text    `json:"mobile"`
	Advance  *Amount  `json:"advance,omitempty"`
	LastPaid *Text    `json:"lastpaid,omitempty"`
}

// Response models
type ExpenseEntry struct {
	ExpenseDate string  `db:"expensedate" json:"expensedate"`
	MonthYear   string  `db:"monthyear" json:"monthyear"`
	Description *string `db:"desc" json:"desc"`
	Amount      Amount  `db:"amount" json:"amount"`
}

type TournamentEntry struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	EntryFees   NullAmount `db:"entryfees" json:"entryfees"`
	Paid        NullAmount `db:"paid" json:"paid"`
	Balance     NullAmount `db:"balance" json:"balance"`
	PrizeWon    NullAmount `db:"prizewon" json:"prizewon"`
	Description *string    `db:"desc" json:"desc"`
	IsCompleted bool       `db:"iscompleted" json:"iscompleted"`
}

// TeamSummary carries the five team-level aggregates. A nil or invalid field
// means no row matched that aggregate, which is distinct from a zero total.
type TeamSummary struct {
	TeamAmount              NullAmount `db:"teamamount" json:"teamamount"`
	TeamDueAmount           NullAmount `db:"teamdueamount" json:"teamdueamount"`
	TeamDueAmountPlayers    *string    `db:"teamdueamountplayers" json:"teamdueamountplayers"`
	PlayersDueAmount        NullAmount `db:"playersdueamount" json:"playersdueamount"`
	PlayersDueAmountPlayers *string    `db:"playersdueamountplayers" json:"playersdueamountplayers"`
}

type MonthlyContribution struct {
	PaidMonth  string `db:"paidmonth" json:"paidmonth"`
	PaidAmount Amount `db:"paidamount" json:"paidamount"`
	PaidOn     string `db:"paidon" json:"paidon"`
	PaidName   string `db:"paidname" json:"paidname"`
}

type PlayerEntry struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Mobile   *string `db:"mobile" json:"mobile"`
	LastPaid string  `db:"lastpaid" json:"lastpaid"`
	Advance  Amount  `db:"advance" json:"advance"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

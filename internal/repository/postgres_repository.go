package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rongwang/seabirds-server/internal/models"
)

// PostgresRepository implements the Repository interface using PostgreSQL.
// Formatting, grouping and sign handling for the reports are done in SQL.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const expenseColumns = `expense_id, expense_payee_type, expense_payee_id, expense_amount,
	expense_spent_date, expense_month_year, expense_type, expense_description`

const (
	listExpenseEntriesQuery = `
		SELECT to_char(expense_spent_date, 'MM/DD/YYYY') AS expensedate,
		       to_char(expense_month_year, 'Mon YYYY') AS monthyear,
		       expense_description AS "desc",
		       expense_amount AS amount
		FROM expenses
		ORDER BY expense_spent_date ASC, expense_id ASC
	`

	createExpenseQuery = `
		INSERT INTO expenses (
			expense_payee_type, expense_payee_id, expense_amount,
			expense_spent_date, expense_month_year, expense_type, expense_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + expenseColumns

	updateExpenseQuery = `
		UPDATE expenses
		SET expense_payee_type = $1, expense_payee_id = $2, expense_amount = $3,
		    expense_spent_date = $4, expense_month_year = $5, expense_type = $6,
		    expense_description = $7
		WHERE expense_id = $8
		RETURNING ` + expenseColumns
)

// Expense repository methods
func (r *PostgresRepository) ListExpenseEntries(ctx context.Context) ([]models.ExpenseEntry, error) {
	entries := []models.ExpenseEntry{}
	if err := r.db.SelectContext(ctx, &entries, listExpenseEntriesQuery); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.GetContext(ctx, &expense, createExpenseQuery,
		req.PayeeType, req.PayeeID, req.Amount,
		req.SpentDate, req.MonthYear, req.Type, req.Description)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *PostgresRepository) UpdateExpense(ctx context.Context, id int64, req models.ExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.GetContext(ctx, &expense, updateExpenseQuery,
		req.PayeeType, req.PayeeID, req.Amount,
		req.SpentDate, req.MonthYear, req.Type, req.Description, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Expense not found
		}
		return nil, err
	}
	return &expense, nil
}

const (
	listTournamentsQuery = `
		SELECT tournament_id AS id,
		       tournament_name AS name,
		       tournament_entry_fee AS entryfees,
		       tournament_amount_paid AS paid,
		       tournament_amount_balance AS balance,
		       tournament_amount_won AS prizewon,
		       tournament_description AS "desc",
		       tournament_iscompleted AS iscompleted
		FROM tournaments
	`

	createTournamentQuery = `
		INSERT INTO tournaments (
			tournament_name, tournament_entry_fee, tournament_amount_paid,
			tournament_amount_balance, tournament_amount_won,
			tournament_description, tournament_iscompleted
		) VALUES (
			$1, $2, COALESCE($3::numeric, 0),
			COALESCE($4::numeric, 0), COALESCE($5::numeric, 0),
			$6, COALESCE($7::boolean, FALSE)
		)
	`

	// Amount columns the caller omits keep their stored value.
	updateTournamentQuery = `
		UPDATE tournaments
		SET tournament_name = $1, tournament_entry_fee = $2,
		    tournament_amount_paid = COALESCE($3::numeric, tournament_amount_paid),
		    tournament_amount_balance = COALESCE($4::numeric, tournament_amount_balance),
		    tournament_amount_won = COALESCE($5::numeric, tournament_amount_won),
		    tournament_description = $6, tournament_iscompleted = $7
		WHERE tournament_id = $8
	`
)

// Tournament repository methods
func (r *PostgresRepository) ListTournaments(ctx context.Context, filter models.CompletionFilter) ([]models.TournamentEntry, error) {
	query := listTournamentsQuery
	var args []interface{}

	switch filter {
	case models.CompletionCompleted:
		query += ` WHERE tournament_iscompleted = $1`
		args = append(args, true)
	case models.CompletionPending:
		query += ` WHERE tournament_iscompleted = $1`
		args = append(args, false)
	}

	query += ` ORDER BY 1 ASC`

	tournaments := []models.TournamentEntry{}
	if err := r.db.SelectContext(ctx, &tournaments, query, args...); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *PostgresRepository) CreateTournament(ctx context.Context, req models.TournamentRequest) error {
	_, err := r.db.ExecContext(ctx, createTournamentQuery,
		req.Name, req.EntryFee, req.AmountPaid, req.AmountBalance, req.AmountWon,
		req.Description, req.IsCompleted)
	return err
}

func (r *PostgresRepository) UpdateTournament(ctx context.Context, id int64, req models.TournamentRequest) error {
	_, err := r.db.ExecContext(ctx, updateTournamentQuery,
		req.Name, req.EntryFee, req.AmountPaid, req.AmountBalance, req.AmountWon,
		req.Description, req.IsCompleted, id)
	return err
}

const (
	listPlayersQuery = `
		SELECT player_id AS id,
		       player_name AS name,
		       player_mobile_no AS mobile,
		       COALESCE(to_char(player_last_paid_date, 'DD Mon YYYY'), '-') AS lastpaid,
		       COALESCE(player_advance_amount, 0) AS advance
		FROM players
		ORDER BY player_id, player_name ASC
	`

	createPlayerQuery = `
		INSERT INTO players (player_name, player_mobile_no, player_advance_amount, player_last_paid_date)
		VALUES ($1, $2, COALESCE($3::numeric, 0), $4::date)
		RETURNING player_id
	`

	updatePlayerQuery = `
		UPDATE players
		SET player_name = $1, player_mobile_no = $2,
		    player_advance_amount = COALESCE($3::numeric, player_advance_amount),
		    player_last_paid_date = COALESCE($4::date, player_last_paid_date)
		WHERE player_id = $5
	`
)

// Player repository methods
func (r *PostgresRepository) ListPlayers(ctx context.Context) ([]models.PlayerEntry, error) {
	players := []models.PlayerEntry{}
	if err := r.db.SelectContext(ctx, &players, listPlayersQuery); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *PostgresRepository) CreatePlayer(ctx context.Context, req models.PlayerRequest) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, createPlayerQuery, req.Name, req.Mobile, req.Advance, req.LastPaid)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) error {
	_, err := r.db.ExecContext(ctx, updatePlayerQuery, req.Name, req.Mobile, req.Advance, req.LastPaid, id)
	return err
}

const (
	// A sub-select with no matching rows yields NULL rather than zero.
	// Settled players count towards teamdueamount but are listed nowhere.
	teamSummaryQuery = `
		SELECT
			(SELECT SUM(expense_amount) FROM expenses) AS teamamount,
			(SELECT SUM(player_advance_amount)
			   FROM players WHERE player_advance_amount >= 0) AS teamdueamount,
			(SELECT STRING_AGG(player_name || ' ₹' || player_advance_amount, ', ' ORDER BY player_id)
			   FROM players WHERE player_advance_amount > 0) AS teamdueamountplayers,
			(SELECT -(SUM(player_advance_amount))
			   FROM players WHERE player_advance_amount <= 0) AS playersdueamount,
			(SELECT STRING_AGG(player_name || ' ₹' || -(player_advance_amount), ', ' ORDER BY player_id)
			   FROM players WHERE player_advance_amount < 0) AS playersdueamountplayers
	`

	// Rows sharing month label, amount, player and paid-on date collapse into
	// one. The secondary order compares MM/DD/YYYY strings, not dates.
	monthlyContributionsQuery = `
		SELECT to_char(expense_month_year, 'Month YYYY') AS paidmonth,
		       expense_amount AS paidamount,
		       to_char(expense_spent_date, 'MM/DD/YYYY') AS paidon,
		       player_name AS paidname
		FROM expenses
		INNER JOIN players ON expense_payee_id = player_id
			AND expense_payee_type = $1
			AND expense_type = $2
		GROUP BY to_char(expense_month_year, 'Month YYYY'), expense_amount, player_name, paidon
		ORDER BY MIN(expense_month_year), paidon ASC
	`
)

// Report repository methods
func (r *PostgresRepository) GetTeamSummary(ctx context.Context) (*models.TeamSummary, error) {
	var summary models.TeamSummary
	if err := r.db.GetContext(ctx, &summary, teamSummaryQuery); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *PostgresRepository) ListMonthlyContributions(ctx context.Context) ([]models.MonthlyContribution, error) {
	contributions := []models.MonthlyContribution{}
	err := r.db.SelectContext(ctx, &contributions, monthlyContributionsQuery,
		models.PayeeTypePlayer, models.ExpenseTypeContribution)
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

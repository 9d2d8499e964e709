package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rongwang/seabirds-server/internal/models"
)

// MemoryRepository implements the Repository interface in process. It keeps
// the same NOT NULL rules, defaults and report semantics as the PostgreSQL
// schema and queries, and is meant for local runs and tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	players     []models.Player
	expenses    []models.Expense
	tournaments []models.Tournament

	lastPlayerID     int64
	lastExpenseID    int64
	lastTournamentID int64
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Reset drops every row and restarts the id sequences
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = nil
	r.expenses = nil
	r.tournaments = nil
	r.lastPlayerID, r.lastExpenseID, r.lastTournamentID = 0, 0, 0
}

func notNullViolation(column string) error {
	return fmt.Errorf("null value in column %q violates not-null constraint", column)
}

// Expense repository methods
func (r *MemoryRepository) ListExpenseEntries(ctx context.Context) ([]models.ExpenseEntry, error) {
	r.mu.RLock()
	expenses := make([]models.Expense, len(r.expenses))
	copy(expenses, r.expenses)
	r.mu.RUnlock()

	sort.SliceStable(expenses, func(i, j int) bool {
		if !expenses[i].SpentDate.Equal(expenses[j].SpentDate) {
			return expenses[i].SpentDate.Before(expenses[j].SpentDate)
		}
		return expenses[i].ID < expenses[j].ID
	})

	entries := make([]models.ExpenseEntry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, models.ExpenseEntry{
			ExpenseDate: formatMonthDayYear(e.SpentDate),
			MonthYear:   formatShortMonthYear(e.MonthYear),
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	return entries, nil
}

func (r *MemoryRepository) CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastExpenseID++
	expense.ID = r.lastExpenseID
	r.expenses = append(r.expenses, expense)
	return &expense, nil
}

func (r *MemoryRepository) UpdateExpense(ctx context.Context, id int64, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID == id {
			expense.ID = id
			r.expenses[i] = expense
			return &expense, nil
		}
	}
	return nil, nil // Expense not found
}

func expenseFromRequest(req models.ExpenseRequest) (models.Expense, error) {
	switch {
	case req.PayeeType == nil:
		return models.Expense{}, notNullViolation("expense_payee_type")
	case req.Amount == nil:
		return models.Expense{}, notNullViolation("expense_amount")
	case req.SpentDate == nil:
		return models.Expense{}, notNullViolation("expense_spent_date")
	case req.MonthYear == nil:
		return models.Expense{}, notNullViolation("expense_month_year")
	case req.Type == nil:
		return models.Expense{}, notNullViolation("expense_type")
	}

	spent, err := parseDate(string(*req.SpentDate))
	if err != nil {
		return models.Expense{}, err
	}
	month, err := parseDate(string(*req.MonthYear))
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		PayeeType:   *req.PayeeType,
		PayeeID:     req.PayeeID.Int64Ptr(),
		Amount:      *req.Amount,
		SpentDate:   spent,
		MonthYear:   month,
		Type:        *req.Type,
		Description: req.Description.StringPtr(),
	}, nil
}

// Tournament repository methods
func (r *MemoryRepository) ListTournaments(ctx context.Context, filter models.CompletionFilter) ([]models.TournamentEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tournaments := []models.TournamentEntry{}
	for _, t := range r.tournaments {
		if !filter.Matches(t.IsCompleted) {
			continue
		}
		tournaments = append(tournaments, models.TournamentEntry{
			ID:          t.ID,
			Name:        t.Name,
			EntryFees:   t.EntryFee,
			Paid:        t.AmountPaid,
			Balance:     t.AmountBalance,
			PrizeWon:    t.AmountWon,
			Description: t.Description,
			IsCompleted: t.IsCompleted,
		})
	}

	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].ID < tournaments[j].ID
	})
	return tournaments, nil
}

func (r *MemoryRepository) CreateTournament(ctx context.Context, req models.TournamentRequest) error {
	if req.Name == nil {
		return notNullViolation("tournament_name")
	}

	tournament := models.Tournament{
		Name:          string(*req.Name),
		EntryFee:      nullAmount(req.EntryFee),
		AmountPaid:    coalesceAmount(req.AmountPaid, zeroAmount),
		AmountBalance: coalesceAmount(req.AmountBalance, zeroAmount),
		AmountWon:     coalesceAmount(req.AmountWon, zeroAmount),
		Description:   req.Description.StringPtr(),
	}
	if req.IsCompleted != nil {
		tournament.IsCompleted = bool(*req.IsCompleted)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastTournamentID++
	tournament.ID = r.lastTournamentID
	r.tournaments = append(r.tournaments, tournament)
	return nil
}

func (r *MemoryRepository) UpdateTournament(ctx context.Context, id int64, req models.TournamentRequest) error {
	if req.Name == nil {
		return notNullViolation("tournament_name")
	}
	if req.IsCompleted == nil {
		return notNullViolation("tournament_iscompleted")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tournaments {
		t := &r.tournaments[i]
		if t.ID != id {
			continue
		}
		t.Name = string(*req.Name)
		t.EntryFee = nullAmount(req.EntryFee)
		t.AmountPaid = coalesceAmount(req.AmountPaid, t.AmountPaid)
		t.AmountBalance = coalesceAmount(req.AmountBalance, t.AmountBalance)
		t.AmountWon = coalesceAmount(req.AmountWon, t.AmountWon)
		t.Description = req.Description.StringPtr()
		t.IsCompleted = bool(*req.IsCompleted)
	}
	return nil
}

// Player repository methods
func (r *MemoryRepository) ListPlayers(ctx context.Context) ([]models.PlayerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]models.PlayerEntry, 0, len(r.players))
	for _, p := range r.players {
		entry := models.PlayerEntry{
			ID:       p.ID,
			Name:     p.Name,
			Mobile:   p.Mobile,
			LastPaid: "-",
			Advance:  zeroAmount.Amount(),
		}
		if p.LastPaidDate != nil {
			entry.LastPaid = formatDayShortMonthYear(*p.LastPaidDate)
		}
		if p.AdvanceAmount.Valid {
			entry.Advance = p.AdvanceAmount.Amount()
		}
		players = append(players, entry)
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].ID != players[j].ID {
			return players[i].ID < players[j].ID
		}
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func (r *MemoryRepository) CreatePlayer(ctx context.Context, req models.PlayerRequest) (int64, error) {
	if req.Name == nil {
		return 0, notNullViolation("player_name")
	}

	player := models.Player{
		Name:          string(*req.Name),
		Mobile:        req.Mobile.StringPtr(),
		AdvanceAmount: coalesceAmount(req.Advance, zeroAmount),
		IsActive:      true,
	}
	if req.LastPaid != nil {
		paid, err := parseDate(string(*req.LastPaid))
		if err != nil {
			return 0, err
		}
		player.LastPaidDate = &paid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastPlayerID++
	player.ID = r.lastPlayerID
	r.players = append(r.players, player)
	return player.ID, nil
}

func (r *MemoryRepository) UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) error {
	if req.Name == nil {
		return notNullViolation("player_name")
	}

	var lastPaid *time.Time
	if req.LastPaid != nil {
		paid, err := parseDate(string(*req.LastPaid))
		if err != nil {
			return err
		}
		lastPaid = &paid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		p := &r.players[i]
		if p.ID != id {
			continue
		}
		p.Name = string(*req.Name)
		p.Mobile = req.Mobile.StringPtr()
		p.AdvanceAmount = coalesceAmount(req.Advance, p.AdvanceAmount)
		if lastPaid != nil {
			p.LastPaidDate = lastPaid
		}
	}
	return nil
}

// Report repository methods
func (r *MemoryRepository) GetTeamSummary(ctx context.Context) (*models.TeamSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var summary models.TeamSummary

	for _, e := range r.expenses {
		summary.TeamAmount = addAmount(summary.TeamAmount, e.Amount)
	}

	var teamDue, playersDue []string
	for _, p := range r.players {
		// NULL advances never satisfy a comparison, as in SQL.
		if !p.AdvanceAmount.Valid {
			continue
		}
		advance := p.AdvanceAmount.Amount()
		if !advance.IsNegative() {
			summary.TeamDueAmount = addAmount(summary.TeamDueAmount, advance)
		}
		if !advance.IsPositive() {
			summary.PlayersDueAmount = addAmount(summary.PlayersDueAmount, advance.Neg())
		}
		switch {
		case p.OwesTeam():
			teamDue = append(teamDue, models.FormatDue(p.Name, advance.String()))
		case p.IsOwed():
			playersDue = append(playersDue, models.FormatDue(p.Name, advance.Neg().String()))
		}
	}

	summary.TeamDueAmountPlayers = joinDues(teamDue)
	summary.PlayersDueAmountPlayers = joinDues(playersDue)
	return &summary, nil
}

type contributionKey struct {
	month  string
	amount string
	name   string
	paidOn string
}

type contributionGroup struct {
	row      models.MonthlyContribution
	minMonth time.Time
}

func (r *MemoryRepository) ListMonthlyContributions(ctx context.Context) ([]models.MonthlyContribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[int64]string, len(r.players))
	for _, p := range r.players {
		names[p.ID] = p.Name
	}

	index := make(map[contributionKey]int)
	var groups []contributionGroup

	for _, e := range r.expenses {
		if !e.IsPlayerContribution() || e.PayeeID == nil {
			continue
		}
		name, ok := names[*e.PayeeID]
		if !ok {
			continue
		}

		row := models.MonthlyContribution{
			PaidMonth:  formatLongMonthYear(e.MonthYear),
			PaidAmount: e.Amount,
			PaidOn:     formatMonthDayYear(e.SpentDate),
			PaidName:   name,
		}
		// NUMERIC groups by value, so 12.5 and 12.50 share a row.
		key := contributionKey{row.PaidMonth, e.Amount.Decimal.String(), name, row.PaidOn}

		if i, seen := index[key]; seen {
			if e.MonthYear.Before(groups[i].minMonth) {
				groups[i].minMonth = e.MonthYear
			}
			continue
		}
		index[key] = len(groups)
		groups = append(groups, contributionGroup{row: row, minMonth: e.MonthYear})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].minMonth.Equal(groups[j].minMonth) {
			return groups[i].minMonth.Before(groups[j].minMonth)
		}
		return groups[i].row.PaidOn < groups[j].row.PaidOn
	})

	contributions := make([]models.MonthlyContribution, 0, len(groups))
	for _, g := range groups {
		contributions = append(contributions, g.row)
	}
	return contributions, nil
}

var zeroAmount = models.NewNullAmount(models.RequireAmount("0"))

func nullAmount(a *models.Amount) models.NullAmount {
	if a == nil {
		return models.NullAmount{}
	}
	return models.NewNullAmount(*a)
}

func coalesceAmount(a *models.Amount, fallback models.NullAmount) models.NullAmount {
	if a == nil {
		return fallback
	}
	return models.NewNullAmount(*a)
}

func addAmount(sum models.NullAmount, a models.Amount) models.NullAmount {
	if !sum.Valid {
		return models.NewNullAmount(a)
	}
	return models.NewNullAmount(sum.Amount().Add(a))
}

func joinDues(entries []string) *string {
	if len(entries) == 0 {
		return nil
	}
	joined := strings.Join(entries, models.DueListSeparator)
	return &joined
}

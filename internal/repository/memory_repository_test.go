package repository

import (
	"context"
	"testing"

	"github.com/rongwang/seabirds-server/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) *models.Text { return models.NewText(s) }

func integer(i int64) *models.Integer { return models.NewInteger(i) }

func boolean(b bool) *models.Boolean { return models.NewBoolean(b) }

func amount(s string) *models.Amount {
	a := models.RequireAmount(s)
	return &a
}

func payee(p models.PayeeType) *models.PayeeType { return &p }

func kind(k models.ExpenseType) *models.ExpenseType { return &k }

func expenseReq(payeeType models.PayeeType, payeeID *models.Integer, amt, spent, month string, typ models.ExpenseType, desc string) models.ExpenseRequest {
	return models.ExpenseRequest{
		PayeeType:   payee(payeeType),
		PayeeID:     payeeID,
		Amount:      amount(amt),
		SpentDate:   text(spent),
		MonthYear:   text(month),
		Type:        kind(typ),
		Description: text(desc),
	}
}

func mustCreatePlayer(t *testing.T, repo *MemoryRepository, name, advance string) int64 {
	t.Helper()
	id, err := repo.CreatePlayer(context.Background(), models.PlayerRequest{Name: text(name), Advance: amount(advance)})
	require.NoError(t, err)
	return id
}

func TestMemoryListExpenseEntriesOrdersByDateThenID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	inputs := []struct{ spent, desc string }{
		{"2024-03-10", "balls"},
		{"2024-01-05", "ground fee"},
		{"2024-03-10", "water"},
		{"2023-12-31", "kit"},
	}
	for _, in := range inputs {
		_, err := repo.CreateExpense(ctx, expenseReq(2, nil, "100", in.spent, "2024-01-01", 2, in.desc))
		require.NoError(t, err)
	}

	entries, err := repo.ListExpenseEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	var got []string
	for _, e := range entries {
		got = append(got, *e.Description)
	}
	assert.Equal(t, []string{"kit", "ground fee", "balls", "water"}, got)
	assert.Equal(t, "12/31/2023", entries[0].ExpenseDate)
	assert.Equal(t, "Jan 2024", entries[0].MonthYear)
}

func TestMemoryCreateExpenseRequiresStoreColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	req := expenseReq(1, integer(1), "50", "2024-01-01", "2024-01-01", 1, "fee")
	req.Amount = nil

	_, err := repo.CreateExpense(ctx, req)
	assert.ErrorContains(t, err, "expense_amount")

	req = expenseReq(1, integer(1), "50", "not a date", "2024-01-01", 1, "fee")
	_, err = repo.CreateExpense(ctx, req)
	assert.Error(t, err)
}

func TestMemoryUpdateExpense(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.CreateExpense(ctx, expenseReq(2, nil, "10", "2024-01-01", "2024-01-01", 2, "tape"))
	require.NoError(t, err)

	updated, err := repo.UpdateExpense(ctx, created.ID, expenseReq(2, nil, "12.50", "2024-01-02", "2024-01-01", 2, "tape x2"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("12.5")))

	missing, err := repo.UpdateExpense(ctx, 999, expenseReq(2, nil, "1", "2024-01-01", "2024-01-01", 2, "x"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryListTournamentsFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i, done := range []bool{true, false, true, false} {
		err := repo.CreateTournament(ctx, models.TournamentRequest{
			Name:        text("Cup " + string(rune('A'+i))),
			EntryFee:    amount("500"),
			IsCompleted: boolean(done),
		})
		require.NoError(t, err)
	}

	ids := func(entries []models.TournamentEntry) []int64 {
		var out []int64
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	completed, err := repo.ListTournaments(ctx, models.CompletionCompleted)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(completed))

	pending, err := repo.ListTournaments(ctx, models.CompletionPending)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, ids(pending))

	all, err := repo.ListTournaments(ctx, models.CompletionAny)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(all))

	assert.True(t, all[0].Paid.Valid)
	assert.True(t, all[0].Paid.Decimal.IsZero())
}

func TestMemoryUpdateTournamentKeepsOmittedAmounts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.CreateTournament(ctx, models.TournamentRequest{
		Name:       text("League"),
		EntryFee:   amount("1000"),
		AmountPaid: amount("400"),
	}))

	err := repo.UpdateTournament(ctx, 1, models.TournamentRequest{
		Name:        text("League 2024"),
		EntryFee:    amount("1000"),
		AmountWon:   amount("2500"),
		IsCompleted: boolean(true),
	})
	require.NoError(t, err)

	all, err := repo.ListTournaments(ctx, models.CompletionAny)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "League 2024", all[0].Name)
	assert.True(t, all[0].Paid.Decimal.Equal(decimal.NewFromInt(400)))
	assert.True(t, all[0].PrizeWon.Decimal.Equal(decimal.NewFromInt(2500)))
	assert.True(t, all[0].IsCompleted)

	err = repo.UpdateTournament(ctx, 1, models.TournamentRequest{Name: text("League")})
	assert.ErrorContains(t, err, "tournament_iscompleted")
}

func TestMemoryTeamSummary(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	mustCreatePlayer(t, repo, "A", "50")
	mustCreatePlayer(t, repo, "B", "-20")
	mustCreatePlayer(t, repo, "C", "0")

	summary, err := repo.GetTeamSummary(ctx)
	require.NoError(t, err)

	assert.False(t, summary.TeamAmount.Valid, "no expenses means a null total, not zero")
	assert.True(t, summary.TeamDueAmount.Decimal.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, summary.TeamDueAmountPlayers)
	assert.Equal(t, "A ₹50", *summary.TeamDueAmountPlayers)
	assert.True(t, summary.PlayersDueAmount.Decimal.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, summary.PlayersDueAmountPlayers)
	assert.Equal(t, "B ₹20", *summary.PlayersDueAmountPlayers)
}

func TestMemoryTeamSummaryNullAggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	mustCreatePlayer(t, repo, "Settled", "0")
	_, err := repo.CreateExpense(ctx, expenseReq(2, nil, "300", "2024-02-01", "2024-02-01", 2, "nets"))
	require.NoError(t, err)
	_, err = repo.CreateExpense(ctx, expenseReq(1, integer(1), "200", "2024-02-02", "2024-02-01", 1, "sub"))
	require.NoError(t, err)

	summary, err := repo.GetTeamSummary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TeamAmount.Decimal.Equal(decimal.NewFromInt(500)))
	// A settled player counts in both sums as zero but is listed nowhere.
	assert.True(t, summary.TeamDueAmount.Valid)
	assert.True(t, summary.TeamDueAmount.Decimal.IsZero())
	assert.True(t, summary.PlayersDueAmount.Valid)
	assert.True(t, summary.PlayersDueAmount.Decimal.IsZero())
	assert.Nil(t, summary.TeamDueAmountPlayers)
	assert.Nil(t, summary.PlayersDueAmountPlayers)
}

func TestMemoryTeamSummaryJoinsMultipleDues(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	mustCreatePlayer(t, repo, "A", "50")
	mustCreatePlayer(t, repo, "B", "25.5")
	mustCreatePlayer(t, repo, "C", "-10")
	mustCreatePlayer(t, repo, "D", "-5")
	mustCreatePlayer(t, repo, "E", "12.50")
	mustCreatePlayer(t, repo, "F", "-0.10")

	summary, err := repo.GetTeamSummary(ctx)
	require.NoError(t, err)

	// Amounts keep the scale they were stored with, as NUMERIC text does.
	assert.Equal(t, "A ₹50, B ₹25.5, E ₹12.50", *summary.TeamDueAmountPlayers)
	assert.Equal(t, "C ₹10, D ₹5, F ₹0.10", *summary.PlayersDueAmountPlayers)
	assert.Equal(t, "88.00", summary.TeamDueAmount.Amount().String())
	assert.Equal(t, "15.10", summary.PlayersDueAmount.Amount().String())
}

func TestMemoryMonthlyContributions(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	ravi := mustCreatePlayer(t, repo, "Ravi", "0")
	anil := mustCreatePlayer(t, repo, "Anil", "0")

	reqs := []models.ExpenseRequest{
		expenseReq(1, integer(ravi), "500", "2024-02-03", "2024-02-01", 1, "feb"),
		expenseReq(1, integer(anil), "500", "2024-01-20", "2024-01-01", 1, "jan"),
		// duplicate of the row above on every projected field
		expenseReq(1, integer(anil), "500", "2024-01-20", "2024-01-01", 1, "jan again"),
		// expenditure paid to a player: never a contribution
		expenseReq(1, integer(ravi), "9999", "2024-01-02", "2024-01-01", 2, "refund"),
		// team-level payee
		expenseReq(2, integer(ravi), "8888", "2024-01-03", "2024-01-01", 1, "sponsor"),
		// unknown player
		expenseReq(1, integer(42), "7777", "2024-01-04", "2024-01-01", 1, "ghost"),
		expenseReq(1, integer(ravi), "500", "2024-01-05", "2024-01-01", 1, "jan"),
	}
	for _, req := range reqs {
		_, err := repo.CreateExpense(ctx, req)
		require.NoError(t, err)
	}

	rows, err := repo.ListMonthlyContributions(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, models.MonthlyContribution{
		PaidMonth: "January   2024", PaidAmount: models.RequireAmount("500"), PaidOn: "01/05/2024", PaidName: "Ravi",
	}, rows[0])
	assert.Equal(t, "01/20/2024", rows[1].PaidOn)
	assert.Equal(t, "Anil", rows[1].PaidName)
	assert.Equal(t, "February  2024", rows[2].PaidMonth)

	for _, row := range rows {
		assert.False(t, row.PaidAmount.GreaterThan(decimal.NewFromInt(500)))
	}
}

func TestMemoryMonthlyContributionsSortsPaidOnLexically(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	id := mustCreatePlayer(t, repo, "Ravi", "0")

	// Both attributed to the same month; 12/30/2023 sorts after 01/02/2024
	// because the comparison is on the formatted string.
	_, err := repo.CreateExpense(ctx, expenseReq(1, integer(id), "100", "2023-12-30", "2024-01-01", 1, "early"))
	require.NoError(t, err)
	_, err = repo.CreateExpense(ctx, expenseReq(1, integer(id), "200", "2024-01-02", "2024-01-01", 1, "late"))
	require.NoError(t, err)

	rows, err := repo.ListMonthlyContributions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "01/02/2024", rows[0].PaidOn)
	assert.Equal(t, "12/30/2023", rows[1].PaidOn)
}

func TestMemoryPlayers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	id, err := repo.CreatePlayer(ctx, models.PlayerRequest{Name: text("Ravi"), Mobile: text("9876543210")})
	require.NoError(t, err)

	_, err = repo.CreatePlayer(ctx, models.PlayerRequest{Mobile: text("1")})
	assert.ErrorContains(t, err, "player_name")

	players, err := repo.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "-", players[0].LastPaid)
	assert.True(t, players[0].Advance.IsZero())

	err = repo.UpdatePlayer(ctx, id, models.PlayerRequest{
		Name:     text("Ravi K"),
		Mobile:   text("9876543210"),
		Advance:  amount("150"),
		LastPaid: text("2024-03-09"),
	})
	require.NoError(t, err)

	// Omitted advance and last paid date are left as they are.
	err = repo.UpdatePlayer(ctx, id, models.PlayerRequest{Name: text("Ravi Kumar"), Mobile: text("9876543210")})
	require.NoError(t, err)

	players, err = repo.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Ravi Kumar", players[0].Name)
	assert.Equal(t, "09 Mar 2024", players[0].LastPaid)
	assert.True(t, players[0].Advance.Equal(decimal.NewFromInt(150)))
}

func TestMemoryReset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	mustCreatePlayer(t, repo, "A", "1")
	repo.Reset()

	players, err := repo.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)

	id := mustCreatePlayer(t, repo, "B", "1")
	assert.Equal(t, int64(1), id)
}

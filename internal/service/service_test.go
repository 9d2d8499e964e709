package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rongwang/seabirds-server/internal/models"
	"github.com/rongwang/seabirds-server/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepository fails every call with the same store error.
type failingRepository struct {
	repository.Repository
	err error
}

func (f failingRepository) ListExpenseEntries(context.Context) ([]models.ExpenseEntry, error) {
	return nil, f.err
}

func (f failingRepository) GetTeamSummary(context.Context) (*models.TeamSummary, error) {
	return nil, f.err
}

func (f failingRepository) ListMonthlyContributions(context.Context) ([]models.MonthlyContribution, error) {
	return nil, f.err
}

func (f failingRepository) CreateTournament(context.Context, models.TournamentRequest) error {
	return f.err
}

func text(s string) *models.Text { return models.NewText(s) }

func TestStoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	svc := NewDefaultService(failingRepository{err: connErr})

	_, err := svc.ListExpenses(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "listing expenses")

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "listing expenses", storeErr.Op)

	_, err = svc.TeamSummary(ctx)
	assert.ErrorIs(t, err, ErrStore)

	err = svc.CreateTournament(ctx, models.TournamentRequest{})
	assert.ErrorIs(t, err, ErrStore)

	var buf bytes.Buffer
	err = svc.ExportMonthlyContributions(ctx, &buf)
	assert.ErrorIs(t, err, ErrStore)
	assert.Zero(t, buf.Len())
}

func TestUpdateExpenseNotFound(t *testing.T) {
	svc := NewDefaultService(repository.NewMemoryRepository())

	amount := models.NewAmount(decimal.NewFromInt(10))
	payee := models.PayeeType(2)
	typ := models.ExpenseType(2)

	_, err := svc.UpdateExpense(context.Background(), 12, models.ExpenseRequest{
		PayeeType: &payee,
		Amount:    &amount,
		SpentDate: text("2024-01-01"),
		MonthYear: text("2024-01-01"),
		Type:      &typ,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStore)
}

func TestListTournamentsParsesFilter(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewDefaultService(repo)

	require.NoError(t, svc.CreateTournament(ctx, models.TournamentRequest{Name: text("Done"), IsCompleted: models.NewBoolean(true)}))
	require.NoError(t, svc.CreateTournament(ctx, models.TournamentRequest{Name: text("Open"), IsCompleted: models.NewBoolean(false)}))

	completed, err := svc.ListTournaments(ctx, "true")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Done", completed[0].Name)

	open, err := svc.ListTournaments(ctx, "false")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Open", open[0].Name)

	for _, v := range []string{"", "True", "all"} {
		all, err := svc.ListTournaments(ctx, v)
		require.NoError(t, err)
		assert.Len(t, all, 2, "isactive=%q", v)
	}
}

func TestSavePlayerUpsert(t *testing.T) {
	ctx := context.Background()
	svc := NewDefaultService(repository.NewMemoryRepository())

	require.NoError(t, svc.SavePlayer(ctx, models.PlayerRequest{Name: text("Ravi"), Mobile: text("111")}))

	players, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	id := players[0].ID

	require.NoError(t, svc.SavePlayer(ctx, models.PlayerRequest{ID: models.NewInteger(id), Name: text("Ravi Kumar"), Mobile: text("222")}))

	players, err = svc.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1, "an upsert with an id must not insert")
	assert.Equal(t, "Ravi Kumar", players[0].Name)
	assert.Equal(t, "222", *players[0].Mobile)

	err = svc.SavePlayer(ctx, models.PlayerRequest{Mobile: text("333")})
	assert.ErrorIs(t, err, ErrStore)
}

func TestExportMonthlyContributions(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewDefaultService(repo)

	id, err := svc.CreatePlayer(ctx, models.PlayerRequest{Name: text("Ravi")})
	require.NoError(t, err)

	amount := models.NewAmount(decimal.NewFromInt(500))
	payee := models.PayeeTypePlayer
	typ := models.ExpenseTypeContribution
	_, err = svc.CreateExpense(ctx, models.ExpenseRequest{
		PayeeType: &payee,
		PayeeID:   models.NewInteger(id),
		Amount:    &amount,
		SpentDate: text("2024-01-05"),
		MonthYear: text("2024-01-01"),
		Type:      &typ,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportMonthlyContributions(ctx, &buf))
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

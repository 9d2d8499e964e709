package repository

import (
	"context"

	"github.com/rongwang/seabirds-server/internal/models"
)

// Repository interface defines the methods that any repository implementation must satisfy.
// Every method maps onto exactly one statement against the store.
type Repository interface {
	// Expense operations
	ListExpenseEntries(ctx context.Context) ([]models.ExpenseEntry, error)
	CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req models.ExpenseRequest) (*models.Expense, error)

	// Tournament operations
	ListTournaments(ctx context.Context, filter models.CompletionFilter) ([]models.TournamentEntry, error)
	CreateTournament(ctx context.Context, req models.TournamentRequest) error
	UpdateTournament(ctx context.Context, id int64, req models.TournamentRequest) error

	// Player operations
	ListPlayers(ctx context.Context) ([]models.PlayerEntry, error)
	CreatePlayer(ctx context.Context, req models.PlayerRequest) (int64, error)
	UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) error

	// Report operations
	GetTeamSummary(ctx context.Context) (*models.TeamSummary, error)
	ListMonthlyContributions(ctx context.Context) ([]models.MonthlyContribution, error)

	Ping(ctx context.Context) error
}

package service

import (
	"context"
	"io"

	"github.com/rongwang/seabirds-server/internal/export"
	"github.com/rongwang/seabirds-server/internal/models"
	"github.com/rongwang/seabirds-server/internal/repository"
)

// Service defines all the business logic operations
type Service interface {
	// Expenses
	ListExpenses(ctx context.Context) ([]models.ExpenseEntry, error)
	CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req models.ExpenseRequest) (*models.Expense, error)

	// Tournaments
	ListTournaments(ctx context.Context, isActive string) ([]models.TournamentEntry, error)
	CreateTournament(ctx context.Context, req models.TournamentRequest) error
	UpdateTournament(ctx context.Context, id int64, req models.TournamentRequest) error

	// Players
	ListPlayers(ctx context.Context) ([]models.PlayerEntry, error)
	CreatePlayer(ctx context.Context, req models.PlayerRequest) (int64, error)
	UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) error
	SavePlayer(ctx context.Context, req models.PlayerRequest) error

	// Reports
	TeamSummary(ctx context.Context) (*models.TeamSummary, error)
	MonthlyContributions(ctx context.Context) ([]models.MonthlyContribution, error)
	ExportMonthlyContributions(ctx context.Context, w io.Writer) error

	Ping(ctx context.Context) error
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo repository.Repository
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository) Service {
	return &DefaultService{
		repo: repo,
	}
}

func (s *DefaultService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return storeError("pinging store", err)
	}
	return nil
}

// Expense operations
func (s *DefaultService) ListExpenses(ctx context.Context) ([]models.ExpenseEntry, error) {
	entries, err := s.repo.ListExpenseEntries(ctx)
	if err != nil {
		return nil, storeError("listing expenses", err)
	}
	return entries, nil
}

func (s *DefaultService) CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.repo.CreateExpense(ctx, req)
	if err != nil {
		return nil, storeError("creating expense", err)
	}
	return expense, nil
}

func (s *DefaultService) UpdateExpense(ctx context.Context, id int64, req models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.repo.UpdateExpense(ctx, id, req)
	if err != nil {
		return nil, storeError("updating expense", err)
	}
	if expense == nil {
		return nil, ErrNotFound
	}
	return expense, nil
}

// Tournament operations
func (s *DefaultService) ListTournaments(ctx context.Context, isActive string) ([]models.TournamentEntry, error) {
	tournaments, err := s.repo.ListTournaments(ctx, models.ParseCompletionFilter(isActive))
	if err != nil {
		return nil, storeError("listing tournaments", err)
	}
	return tournaments, nil
}

func (s *DefaultService) CreateTournament(ctx context.Context, req models.TournamentRequest) error {
	if err := s.repo.CreateTournament(ctx, req); err != nil {
		return storeError("creating tournament", err)
	}
	return nil
}

func (s *DefaultService) UpdateTournament(ctx context.Context, id int64, req models.TournamentRequest) error {
	if err := s.repo.UpdateTournament(ctx, id, req); err != nil {
		return storeError("updating tournament", err)
	}
	return nil
}

// Player operations
func (s *DefaultService) ListPlayers(ctx context.Context) ([]models.PlayerEntry, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, storeError("listing players", err)
	}
	return players, nil
}

func (s *DefaultService) CreatePlayer(ctx context.Context, req models.PlayerRequest) (int64, error) {
	id, err := s.repo.CreatePlayer(ctx, req)
	if err != nil {
		return 0, storeError("creating player", err)
	}
	return id, nil
}

func (s *DefaultService) UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) error {
	if err := s.repo.UpdatePlayer(ctx, id, req); err != nil {
		return storeError("updating player", err)
	}
	return nil
}

// SavePlayer updates the player named by req.ID, or inserts a new player
// when no id is given.
func (s *DefaultService) SavePlayer(ctx context.Context, req models.PlayerRequest) error {
	if req.ID != nil {
		return s.UpdatePlayer(ctx, int64(*req.ID), req)
	}
	_, err := s.CreatePlayer(ctx, req)
	return err
}

// Report operations
func (s *DefaultService) TeamSummary(ctx context.Context) (*models.TeamSummary, error) {
	summary, err := s.repo.GetTeamSummary(ctx)
	if err != nil {
		return nil, storeError("computing team summary", err)
	}
	return summary, nil
}

func (s *DefaultService) MonthlyContributions(ctx context.Context) ([]models.MonthlyContribution, error) {
	contributions, err := s.repo.ListMonthlyContributions(ctx)
	if err != nil {
		return nil, storeError("listing monthly contributions", err)
	}
	return contributions, nil
}

// ExportMonthlyContributions writes the contribution ledger to w as an xlsx workbook
func (s *DefaultService) ExportMonthlyContributions(ctx context.Context, w io.Writer) error {
	contributions, err := s.MonthlyContributions(ctx)
	if err != nil {
		return err
	}
	return export.WriteContributions(w, contributions)
}

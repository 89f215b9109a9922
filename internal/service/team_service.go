package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/draftops/draftboard/internal/budget"
	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/storage"
)

// leagueSize is how many teams the initialize operation creates.
const leagueSize = 12

// TeamDetail is a team together with its associated players, resolved
// through the reverse lookup on Player.FantasyTeamID.
type TeamDetail struct {
	Team    *models.Team
	Players []*models.Player
}

// TeamService implements team lifecycle operations and the detailed
// team queries used for presentation.
type TeamService struct {
	store storage.Store
}

// NewTeamService creates a new TeamService with the given storage backend.
func NewTeamService(store storage.Store) *TeamService {
	return &TeamService{store: store}
}

// List returns every team with its associated players. Players are
// fetched in a single query and grouped in memory, so the listing does
// one read per table regardless of team count.
func (s *TeamService) List(ctx context.Context) ([]*TeamDetail, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[int64][]*models.Player)
	for _, p := range players {
		if p.FantasyTeamID != nil {
			byTeam[*p.FantasyTeamID] = append(byTeam[*p.FantasyTeamID], p)
		}
	}

	details := make([]*TeamDetail, len(teams))
	for i, team := range teams {
		details[i] = &TeamDetail{Team: team, Players: byTeam[team.ID]}
	}
	return details, nil
}

// Get returns one team with its associated players.
func (s *TeamService) Get(ctx context.Context, id int64) (*TeamDetail, error) {
	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, notFound("Team not found")
	}
	players, err := s.store.ListPlayersByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TeamDetail{Team: team, Players: players}, nil
}

// Remaining resolves a team's live players and returns its remaining
// budget. Equivalent to budget.Remaining over an explicit player list.
func (s *TeamService) Remaining(ctx context.Context, id int64) (int, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return budget.Remaining(detail.Team, detail.Players), nil
}

// Create persists a new team. Name uniqueness is an exact, case-sensitive
// check; a duplicate is a conflict.
func (s *TeamService) Create(ctx context.Context, name string, teamBudget int) (*models.Team, error) {
	slog.Info("CreateTeam request received", "name", name, "budget", teamBudget)

	if _, err := s.store.GetTeamByName(ctx, name); err == nil {
		return nil, conflict("Team name already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	team := &models.Team{Name: name, Budget: teamBudget}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		slog.Error("CreateTeam failed", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	slog.Info("Team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// Initialize creates the default league: teams "Team 1" through "Team 12"
// with the default budget, in one atomic batch. It refuses to run when any
// team already exists.
func (s *TeamService) Initialize(ctx context.Context) ([]*models.Team, error) {
	slog.Info("InitializeTeams request received")

	existing, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, conflict("Teams already initialized. Clear teams first.")
	}

	teams := make([]*models.Team, leagueSize)
	for i := range teams {
		teams[i] = &models.Team{
			Name:   fmt.Sprintf("Team %d", i+1),
			Budget: models.DefaultBudget,
		}
	}
	if err := s.store.CreateTeams(ctx, teams); err != nil {
		slog.Error("InitializeTeams failed", "error", err)
		return nil, fmt.Errorf("failed to initialize teams: %w", err)
	}

	slog.Info("League initialized", "count", len(teams))
	return teams, nil
}

// Update renames and/or rebudgets a team. A rename to a name held by a
// different team is a conflict; the budget replaces the stored value
// directly, with no validation against already-spent amounts.
func (s *TeamService) Update(ctx context.Context, id int64, name *string, teamBudget *int) (*models.Team, error) {
	slog.Info("UpdateTeam request received", "team_id", id)

	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, notFound("Team not found")
	}

	if name != nil {
		other, err := s.store.GetTeamByName(ctx, *name)
		if err == nil && other.ID != id {
			return nil, conflict("Team name already exists")
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		team.Name = *name
	}
	if teamBudget != nil {
		team.Budget = *teamBudget
	}

	if err := s.store.UpdateTeam(ctx, team); err != nil {
		slog.Error("UpdateTeam failed", "team_id", id, "error", err)
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	slog.Info("Team updated", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// Delete removes one team. A team that still has associated players
// cannot be deleted; they must be unassigned first. Returns the deleted
// team so callers can report its name.
func (s *TeamService) Delete(ctx context.Context, id int64) (*models.Team, error) {
	slog.Info("DeleteTeam request received", "team_id", id)

	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, notFound("Team not found")
	}

	players, err := s.store.ListPlayersByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(players) > 0 {
		return nil, conflict("Cannot delete team with drafted players. Undraft players first.")
	}

	if err := s.store.DeleteTeam(ctx, id); err != nil {
		slog.Error("DeleteTeam failed", "team_id", id, "error", err)
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	slog.Info("Team deleted", "team_id", id, "name", team.Name)
	return team, nil
}

// Clear unassigns every player's team association and deletes every team
// as one atomic unit. Unlike Delete, this path intentionally bypasses the
// has-players guard.
func (s *TeamService) Clear(ctx context.Context) error {
	if err := s.store.DeleteAllTeams(ctx); err != nil {
		slog.Error("Clear teams failed", "error", err)
		return fmt.Errorf("failed to clear teams: %w", err)
	}
	slog.Info("All teams cleared")
	return nil
}

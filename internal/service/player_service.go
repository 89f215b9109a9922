package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/roster"
	"github.com/draftops/draftboard/internal/storage"
)

// PlayerService implements player operations: roster ingestion, the draft
// transaction, and board-wide listing and clearing.
type PlayerService struct {
	store storage.Store
}

// NewPlayerService creates a new PlayerService with the given storage backend.
func NewPlayerService(store storage.Store) *PlayerService {
	return &PlayerService{store: store}
}

// List returns every player on the board.
func (s *PlayerService) List(ctx context.Context) ([]*models.Player, error) {
	return s.store.ListPlayers(ctx)
}

// Upload ingests a CSV roster file and persists the resulting players as
// one unit. It returns how many players were created; zero rows is a
// valid, successful outcome.
func (s *PlayerService) Upload(ctx context.Context, filename string, file io.Reader) (int, error) {
	slog.Info("Roster upload received", "filename", filename)

	if !strings.HasSuffix(filename, ".csv") {
		return 0, badInput("Only CSV files are supported")
	}

	players, err := roster.Parse(file)
	if err != nil {
		slog.Error("Roster parse failed", "filename", filename, "error", err)
		return 0, badInput(err.Error())
	}

	if err := s.store.CreatePlayers(ctx, players); err != nil {
		slog.Error("Roster persist failed", "filename", filename, "error", err)
		return 0, fmt.Errorf("failed to persist roster: %w", err)
	}

	slog.Info("Roster uploaded", "filename", filename, "count", len(players))
	return len(players), nil
}

// Draft assigns a player a winning auction price. If teamID is non-nil the
// player's team association is validated and updated; if nil it is left
// untouched. Drafting an already-drafted player overwrites the prior
// price, label and association — there is no re-draft guard.
func (s *PlayerService) Draft(ctx context.Context, playerID int64, price int, draftedBy string, teamID *int64) (*models.Player, error) {
	slog.Info("Draft request received",
		"player_id", playerID,
		"draft_price", price,
		"drafted_by", draftedBy,
	)

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, notFound("Player not found")
	}

	if teamID != nil {
		if _, err := s.store.GetTeam(ctx, *teamID); err != nil {
			return nil, notFound("Team not found")
		}
		player.FantasyTeamID = teamID
	}

	player.Drafted = true
	player.DraftPrice = &price
	player.DraftedBy = &draftedBy

	if err := s.store.UpdatePlayer(ctx, player); err != nil {
		slog.Error("Draft failed", "player_id", playerID, "error", err)
		return nil, fmt.Errorf("failed to draft player: %w", err)
	}

	slog.Info("Player drafted", "player_id", playerID, "draft_price", price)
	return player, nil
}

// Clear removes every player from the board.
func (s *PlayerService) Clear(ctx context.Context) error {
	if err := s.store.DeleteAllPlayers(ctx); err != nil {
		slog.Error("Clear players failed", "error", err)
		return fmt.Errorf("failed to clear players: %w", err)
	}
	slog.Info("All players cleared")
	return nil
}

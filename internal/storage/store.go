// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/draftops/draftboard/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
// Callers should test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for draft-board persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Every method is a complete unit of work: compound operations (batch
// creates, bulk clears) are atomic inside the implementation — either all
// of their writes are visible or none are.
type Store interface {
	// CreatePlayer persists a new player and populates its ID.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// CreatePlayers persists a batch of players atomically,
	// populating each ID.
	CreatePlayers(ctx context.Context, players []*models.Player) error

	// GetPlayer retrieves a player by ID. Returns ErrNotFound if absent.
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)

	// ListPlayers retrieves all players ordered by ID.
	ListPlayers(ctx context.Context) ([]*models.Player, error)

	// ListPlayersByTeam retrieves the players associated with a team.
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]*models.Player, error)

	// UpdatePlayer writes back an existing player.
	// Returns ErrNotFound if the ID does not exist.
	UpdatePlayer(ctx context.Context, player *models.Player) error

	// DeleteAllPlayers removes every player.
	DeleteAllPlayers(ctx context.Context) error

	// CreateTeam persists a new team and populates its ID.
	CreateTeam(ctx context.Context, team *models.Team) error

	// CreateTeams persists a batch of teams atomically,
	// populating each ID.
	CreateTeams(ctx context.Context, teams []*models.Team) error

	// GetTeam retrieves a team by ID. Returns ErrNotFound if absent.
	GetTeam(ctx context.Context, id int64) (*models.Team, error)

	// GetTeamByName retrieves a team by exact name.
	// Returns ErrNotFound if absent.
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)

	// ListTeams retrieves all teams ordered by ID.
	ListTeams(ctx context.Context) ([]*models.Team, error)

	// UpdateTeam writes back an existing team.
	// Returns ErrNotFound if the ID does not exist.
	UpdateTeam(ctx context.Context, team *models.Team) error

	// DeleteTeam removes one team. Returns ErrNotFound if absent.
	// It does not touch player associations; callers enforce the
	// no-players guard before deleting.
	DeleteTeam(ctx context.Context, id int64) error

	// DeleteAllTeams clears every player's team association and then
	// removes every team, as one atomic unit.
	DeleteAllTeams(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

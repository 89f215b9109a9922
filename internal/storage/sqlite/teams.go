package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/storage"
)

// CreateTeam persists a new team and populates its ID.
func (s *SQLiteStore) CreateTeam(ctx context.Context, team *models.Team) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO teams (name, budget) VALUES (?, ?)",
		team.Name, team.Budget,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read team id: %w", err)
	}
	team.ID = id
	return nil
}

// CreateTeams persists a batch of teams in one transaction.
// Either every team is inserted or none are.
func (s *SQLiteStore) CreateTeams(ctx context.Context, teams []*models.Team) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, team := range teams {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO teams (name, budget) VALUES (?, ?)",
			team.Name, team.Budget,
		)
		if err != nil {
			return fmt.Errorf("failed to insert team %q: %w", team.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read team id: %w", err)
		}
		team.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTeam retrieves a team by ID.
func (s *SQLiteStore) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team := &models.Team{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, budget FROM teams WHERE id = ?", id,
	).Scan(&team.ID, &team.Name, &team.Budget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeamByName retrieves a team by exact name.
// SQLite TEXT comparison is case-sensitive, which matches the uniqueness rule.
func (s *SQLiteStore) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	team := &models.Team{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, budget FROM teams WHERE name = ?", name,
	).Scan(&team.ID, &team.Name, &team.Budget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams ordered by ID.
func (s *SQLiteStore) ListTeams(ctx context.Context) ([]*models.Team, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, budget FROM teams ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team := &models.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.Budget); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam writes back an existing team.
func (s *SQLiteStore) UpdateTeam(ctx context.Context, team *models.Team) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE teams SET name = ?, budget = ? WHERE id = ?",
		team.Name, team.Budget, team.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("team %d: %w", team.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteTeam removes one team by ID.
func (s *SQLiteStore) DeleteTeam(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("team %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteAllTeams unassigns every player's team association and deletes
// every team in one transaction.
func (s *SQLiteStore) DeleteAllTeams(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE players SET fantasy_team_id = NULL WHERE fantasy_team_id IS NOT NULL",
	); err != nil {
		return fmt.Errorf("failed to unassign players: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM teams"); err != nil {
		return fmt.Errorf("failed to delete teams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

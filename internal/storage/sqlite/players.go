package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/storage"
)

const playerColumns = "id, name, position, team, projected_points, drafted, draft_price, drafted_by, fantasy_team_id"

// CreatePlayer persists a new player and populates its ID.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO players (name, position, team, projected_points, drafted, draft_price, drafted_by, fantasy_team_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		player.Name, player.Position, player.Team,
		nullFloat(player.ProjectedPoints), player.Drafted,
		nullInt(player.DraftPrice), nullString(player.DraftedBy), nullID(player.FantasyTeamID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read player id: %w", err)
	}
	player.ID = id
	return nil
}

// CreatePlayers persists a batch of players in one transaction.
// Either every player is inserted or none are.
func (s *SQLiteStore) CreatePlayers(ctx context.Context, players []*models.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, player := range players {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO players (name, position, team, projected_points, drafted, draft_price, drafted_by, fantasy_team_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			player.Name, player.Position, player.Team,
			nullFloat(player.ProjectedPoints), player.Drafted,
			nullInt(player.DraftPrice), nullString(player.DraftedBy), nullID(player.FantasyTeamID),
		)
		if err != nil {
			return fmt.Errorf("failed to insert player %q: %w", player.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read player id: %w", err)
		}
		player.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (s *SQLiteStore) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves all players ordered by ID.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

// ListPlayersByTeam retrieves the players associated with the given team.
func (s *SQLiteStore) ListPlayersByTeam(ctx context.Context, teamID int64) ([]*models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE fantasy_team_id = ? ORDER BY id", teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

// UpdatePlayer writes back an existing player.
func (s *SQLiteStore) UpdatePlayer(ctx context.Context, player *models.Player) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE players SET name = ?, position = ?, team = ?, projected_points = ?, drafted = ?, draft_price = ?, drafted_by = ?, fantasy_team_id = ? WHERE id = ?",
		player.Name, player.Position, player.Team,
		nullFloat(player.ProjectedPoints), player.Drafted,
		nullInt(player.DraftPrice), nullString(player.DraftedBy), nullID(player.FantasyTeamID),
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("player %d: %w", player.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteAllPlayers removes every player.
func (s *SQLiteStore) DeleteAllPlayers(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*models.Player, error) {
	var (
		player    models.Player
		points    sql.NullFloat64
		price     sql.NullInt64
		draftedBy sql.NullString
		teamID    sql.NullInt64
	)
	err := row.Scan(&player.ID, &player.Name, &player.Position, &player.Team,
		&points, &player.Drafted, &price, &draftedBy, &teamID)
	if err != nil {
		return nil, err
	}
	if points.Valid {
		player.ProjectedPoints = &points.Float64
	}
	if price.Valid {
		p := int(price.Int64)
		player.DraftPrice = &p
	}
	if draftedBy.Valid {
		player.DraftedBy = &draftedBy.String
	}
	if teamID.Valid {
		player.FantasyTeamID = &teamID.Int64
	}
	return &player, nil
}

func collectPlayers(rows *sql.Rows) ([]*models.Player, error) {
	var players []*models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

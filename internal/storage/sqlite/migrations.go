package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: teams must be created BEFORE players due to the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    budget INTEGER NOT NULL DEFAULT 200
);

CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    team TEXT NOT NULL,
    projected_points REAL,
    drafted INTEGER NOT NULL DEFAULT 0,
    draft_price INTEGER,
    drafted_by TEXT,
    fantasy_team_id INTEGER,
    FOREIGN KEY (fantasy_team_id) REFERENCES teams(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_players_fantasy_team_id ON players(fantasy_team_id);
CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

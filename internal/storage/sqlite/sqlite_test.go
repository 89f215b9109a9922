package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "draftboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestPlayerStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePlayer assigns an ID", func(t *testing.T) {
		player := &models.Player{Name: "Josh Allen", Position: "QB", Team: "BUF", ProjectedPoints: floatPtr(340.5)}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		if player.ID == 0 {
			t.Error("Expected player ID to be assigned")
		}
	})

	t.Run("GetPlayer round-trips nullable fields", func(t *testing.T) {
		player := &models.Player{Name: "Travis Kelce", Position: "TE", Team: "KC"}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		got, err := store.GetPlayer(ctx, player.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if got.Name != "Travis Kelce" || got.Position != "TE" || got.Team != "KC" {
			t.Errorf("unexpected fields: %+v", got)
		}
		if got.ProjectedPoints != nil || got.DraftPrice != nil || got.DraftedBy != nil || got.FantasyTeamID != nil {
			t.Errorf("expected nil optional fields, got %+v", got)
		}
		if got.Drafted {
			t.Error("expected drafted=false")
		}
	})

	t.Run("GetPlayer returns ErrNotFound for missing ID", func(t *testing.T) {
		if _, err := store.GetPlayer(ctx, 99999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdatePlayer persists draft state", func(t *testing.T) {
		player := &models.Player{Name: "CMC", Position: "RB", Team: "SF"}
		if err := store.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		label := "Team A"
		player.Drafted = true
		player.DraftPrice = intPtr(72)
		player.DraftedBy = &label
		if err := store.UpdatePlayer(ctx, player); err != nil {
			t.Fatalf("UpdatePlayer failed: %v", err)
		}

		got, err := store.GetPlayer(ctx, player.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if !got.Drafted || got.DraftPrice == nil || *got.DraftPrice != 72 {
			t.Errorf("draft state not persisted: %+v", got)
		}
		if got.DraftedBy == nil || *got.DraftedBy != "Team A" {
			t.Errorf("drafted_by not persisted: %+v", got)
		}
	})

	t.Run("UpdatePlayer on missing ID returns ErrNotFound", func(t *testing.T) {
		player := &models.Player{ID: 99999, Name: "Ghost"}
		if err := store.UpdatePlayer(ctx, player); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreatePlayers inserts the batch and assigns IDs", func(t *testing.T) {
		batch := []*models.Player{
			{Name: "A", Position: "WR", Team: "DAL"},
			{Name: "B", Position: "WR", Team: "PHI"},
			{Name: "C", Position: "WR", Team: "NYG"},
		}
		if err := store.CreatePlayers(ctx, batch); err != nil {
			t.Fatalf("CreatePlayers failed: %v", err)
		}
		for _, p := range batch {
			if p.ID == 0 {
				t.Errorf("player %q has no ID", p.Name)
			}
		}
	})

	t.Run("DeleteAllPlayers empties the table", func(t *testing.T) {
		if err := store.DeleteAllPlayers(ctx); err != nil {
			t.Fatalf("DeleteAllPlayers failed: %v", err)
		}
		players, err := store.ListPlayers(ctx)
		if err != nil {
			t.Fatalf("ListPlayers failed: %v", err)
		}
		if len(players) != 0 {
			t.Errorf("expected 0 players, got %d", len(players))
		}
	})
}

func TestTeamStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateTeam and GetTeam", func(t *testing.T) {
		team := &models.Team{Name: "Team A", Budget: 200}
		if err := store.CreateTeam(ctx, team); err != nil {
			t.Fatalf("CreateTeam failed: %v", err)
		}
		got, err := store.GetTeam(ctx, team.ID)
		if err != nil {
			t.Fatalf("GetTeam failed: %v", err)
		}
		if got.Name != "Team A" || got.Budget != 200 {
			t.Errorf("unexpected team: %+v", got)
		}
	})

	t.Run("GetTeamByName is case-sensitive", func(t *testing.T) {
		if _, err := store.GetTeamByName(ctx, "Team A"); err != nil {
			t.Fatalf("GetTeamByName failed: %v", err)
		}
		if _, err := store.GetTeamByName(ctx, "team a"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for different casing, got %v", err)
		}
	})

	t.Run("DeleteTeam on missing ID returns ErrNotFound", func(t *testing.T) {
		if err := store.DeleteTeam(ctx, 99999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListPlayersByTeam filters by association", func(t *testing.T) {
		team := &models.Team{Name: "Team B", Budget: 200}
		if err := store.CreateTeam(ctx, team); err != nil {
			t.Fatalf("CreateTeam failed: %v", err)
		}
		assigned := &models.Player{Name: "Assigned", Position: "QB", Team: "BUF", FantasyTeamID: &team.ID}
		loose := &models.Player{Name: "Loose", Position: "RB", Team: "SF"}
		if err := store.CreatePlayers(ctx, []*models.Player{assigned, loose}); err != nil {
			t.Fatalf("CreatePlayers failed: %v", err)
		}

		players, err := store.ListPlayersByTeam(ctx, team.ID)
		if err != nil {
			t.Fatalf("ListPlayersByTeam failed: %v", err)
		}
		if len(players) != 1 || players[0].Name != "Assigned" {
			t.Errorf("unexpected players: %+v", players)
		}
	})

	t.Run("DeleteAllTeams unassigns every player", func(t *testing.T) {
		if err := store.DeleteAllTeams(ctx); err != nil {
			t.Fatalf("DeleteAllTeams failed: %v", err)
		}

		teams, err := store.ListTeams(ctx)
		if err != nil {
			t.Fatalf("ListTeams failed: %v", err)
		}
		if len(teams) != 0 {
			t.Errorf("expected 0 teams, got %d", len(teams))
		}

		players, err := store.ListPlayers(ctx)
		if err != nil {
			t.Fatalf("ListPlayers failed: %v", err)
		}
		for _, p := range players {
			if p.FantasyTeamID != nil {
				t.Errorf("player %q still associated with team %d", p.Name, *p.FantasyTeamID)
			}
		}
	})
}

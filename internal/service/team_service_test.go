package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/draftops/draftboard/internal/budget"
)

func TestCreateTeam(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	team, err := svc.Create(ctx, "Team A", 200)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if team.ID == 0 {
		t.Error("expected team ID to be assigned")
	}

	t.Run("exact duplicate name conflicts", func(t *testing.T) {
		if _, err := svc.Create(ctx, "Team A", 200); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("different casing is a different name", func(t *testing.T) {
		if _, err := svc.Create(ctx, "team a", 200); err != nil {
			t.Errorf("expected success for different casing, got %v", err)
		}
	})
}

func TestInitialize(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	teams, err := svc.Initialize(ctx)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(teams) != 12 {
		t.Fatalf("expected 12 teams, got %d", len(teams))
	}
	for i, team := range teams {
		want := fmt.Sprintf("Team %d", i+1)
		if team.Name != want {
			t.Errorf("team %d name = %q, want %q", i, team.Name, want)
		}
		if team.Budget != 200 {
			t.Errorf("team %q budget = %d, want 200", team.Name, team.Budget)
		}
	}

	t.Run("re-initializing conflicts", func(t *testing.T) {
		if _, err := svc.Initialize(ctx); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("a single existing team blocks initialization", func(t *testing.T) {
		other := NewTeamService(newTestStore(t))
		if _, err := other.Create(ctx, "Lone Team", 200); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := other.Initialize(ctx); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})
}

func TestUpdateTeam(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	teamA, _ := svc.Create(ctx, "Team A", 200)
	teamB, _ := svc.Create(ctx, "Team B", 200)

	t.Run("unknown team is not found", func(t *testing.T) {
		name := "New Name"
		if _, err := svc.Update(ctx, 99999, &name, nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rename to a taken name conflicts", func(t *testing.T) {
		name := "Team B"
		if _, err := svc.Update(ctx, teamA.ID, &name, nil); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("rename to a free name succeeds", func(t *testing.T) {
		name := "The Destroyers"
		updated, err := svc.Update(ctx, teamA.ID, &name, nil)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Name != "The Destroyers" {
			t.Errorf("name = %q, want The Destroyers", updated.Name)
		}
	})

	t.Run("self-rename to current name succeeds", func(t *testing.T) {
		name := "Team B"
		if _, err := svc.Update(ctx, teamB.ID, &name, nil); err != nil {
			t.Errorf("self-rename failed: %v", err)
		}
	})

	t.Run("budget replaces the stored value", func(t *testing.T) {
		newBudget := 300
		updated, err := svc.Update(ctx, teamB.ID, nil, &newBudget)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Budget != 300 {
			t.Errorf("budget = %d, want 300", updated.Budget)
		}
	})
}

func TestDeleteTeam(t *testing.T) {
	store := newTestStore(t)
	teamSvc := NewTeamService(store)
	playerSvc := NewPlayerService(store)
	ctx := context.Background()

	team, _ := teamSvc.Create(ctx, "Team A", 200)
	empty, _ := teamSvc.Create(ctx, "Team B", 200)

	if _, err := playerSvc.Upload(ctx, "p.csv", strings.NewReader("name\nJosh Allen\n")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	players, _ := store.ListPlayers(ctx)
	if _, err := playerSvc.Draft(ctx, players[0].ID, 50, "Team A", &team.ID); err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	t.Run("unknown team is not found", func(t *testing.T) {
		if _, err := teamSvc.Delete(ctx, 99999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("team with players cannot be deleted", func(t *testing.T) {
		if _, err := teamSvc.Delete(ctx, team.ID); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("team without players deletes", func(t *testing.T) {
		deleted, err := teamSvc.Delete(ctx, empty.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if deleted.Name != "Team B" {
			t.Errorf("deleted name = %q, want Team B", deleted.Name)
		}
	})

	t.Run("deletion succeeds after reassigning the player", func(t *testing.T) {
		other, _ := teamSvc.Create(ctx, "Team C", 200)
		if _, err := playerSvc.Draft(ctx, players[0].ID, 50, "Team C", &other.ID); err != nil {
			t.Fatalf("reassign draft failed: %v", err)
		}
		if _, err := teamSvc.Delete(ctx, team.ID); err != nil {
			t.Errorf("Delete after reassignment failed: %v", err)
		}
	})
}

func TestClearTeams(t *testing.T) {
	store := newTestStore(t)
	teamSvc := NewTeamService(store)
	playerSvc := NewPlayerService(store)
	ctx := context.Background()

	teams, err := teamSvc.Initialize(ctx)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, err := playerSvc.Upload(ctx, "p.csv", strings.NewReader("name\nA\nB\n")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	players, _ := store.ListPlayers(ctx)
	for i, p := range players {
		if _, err := playerSvc.Draft(ctx, p.ID, 10, teams[i].Name, &teams[i].ID); err != nil {
			t.Fatalf("Draft failed: %v", err)
		}
	}

	// Clear bypasses the has-players guard that blocks single deletion.
	if err := teamSvc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	remaining, err := teamSvc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected 0 teams, got %d", len(remaining))
	}

	players, _ = store.ListPlayers(ctx)
	for _, p := range players {
		if p.FantasyTeamID != nil {
			t.Errorf("player %q still associated after clear", p.Name)
		}
		if !p.Drafted {
			t.Errorf("player %q lost its drafted state", p.Name)
		}
	}
}

func TestBudgetPathsAgree(t *testing.T) {
	store := newTestStore(t)
	teamSvc := NewTeamService(store)
	playerSvc := NewPlayerService(store)
	ctx := context.Background()

	team, _ := teamSvc.Create(ctx, "Team A", 200)
	if _, err := playerSvc.Upload(ctx, "p.csv", strings.NewReader("name\nA\nB\n")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	players, _ := store.ListPlayers(ctx)
	if _, err := playerSvc.Draft(ctx, players[0].ID, 120, "Team A", &team.ID); err != nil {
		t.Fatalf("Draft failed: %v", err)
	}
	if _, err := playerSvc.Draft(ctx, players[1].ID, 30, "Team A", &team.ID); err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	// Explicit-list path.
	detail, err := teamSvc.Get(ctx, team.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	explicit := budget.Remaining(detail.Team, detail.Players)

	// Live-resolution path.
	live, err := teamSvc.Remaining(ctx, team.ID)
	if err != nil {
		t.Fatalf("Remaining failed: %v", err)
	}

	if explicit != live {
		t.Errorf("paths disagree: explicit=%d live=%d", explicit, live)
	}
	if live != 50 {
		t.Errorf("remaining = %d, want 50", live)
	}
}

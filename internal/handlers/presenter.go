package handlers

import (
	"github.com/draftops/draftboard/internal/budget"
	"github.com/draftops/draftboard/internal/models"
	"github.com/draftops/draftboard/internal/service"
)

// PlayerResponse is the wire projection of a player. Fields map directly;
// there are no derived values.
type PlayerResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Team            string   `json:"team"`
	ProjectedPoints *float64 `json:"projected_points"`
	Drafted         bool     `json:"drafted"`
	DraftPrice      *int     `json:"draft_price"`
	DraftedBy       *string  `json:"drafted_by"`
	FantasyTeamID   *int64   `json:"fantasy_team_id"`
}

// TeamResponse is the wire projection of a team. Spent and remaining
// budget are computed from the player list at projection time; a nil
// list projects as spent 0.
type TeamResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Budget          int    `json:"budget"`
	Spent           int    `json:"spent"`
	RemainingBudget int    `json:"remaining_budget"`
}

// TeamDetailResponse additionally carries the player projections. The
// players array is always present on detail views, empty when the team
// has none.
type TeamDetailResponse struct {
	TeamResponse
	Players []PlayerResponse `json:"players"`
}

func playerResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:              p.ID,
		Name:            p.Name,
		Position:        p.Position,
		Team:            p.Team,
		ProjectedPoints: p.ProjectedPoints,
		Drafted:         p.Drafted,
		DraftPrice:      p.DraftPrice,
		DraftedBy:       p.DraftedBy,
		FantasyTeamID:   p.FantasyTeamID,
	}
}

func playerResponses(players []*models.Player) []PlayerResponse {
	out := make([]PlayerResponse, len(players))
	for i, p := range players {
		out[i] = playerResponse(p)
	}
	return out
}

func teamResponse(team *models.Team, players []*models.Player) TeamResponse {
	spent := budget.Spent(players)
	return TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		Budget:          team.Budget,
		Spent:           spent,
		RemainingBudget: team.Budget - spent,
	}
}

func teamDetailResponse(detail *service.TeamDetail) TeamDetailResponse {
	return TeamDetailResponse{
		TeamResponse: teamResponse(detail.Team, detail.Players),
		Players:      playerResponses(detail.Players),
	}
}

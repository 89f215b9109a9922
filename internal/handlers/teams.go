package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/draftops/draftboard/internal/models"
)

type createTeamRequest struct {
	Name   string `json:"name" binding:"required"`
	Budget *int   `json:"budget"`
}

type updateTeamRequest struct {
	Name   *string `json:"name"`
	Budget *int    `json:"budget"`
}

// ListTeams returns every team in detail view, players included.
func (h *Handlers) ListTeams(c *gin.Context) {
	details, err := h.teams.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]TeamDetailResponse, len(details))
	for i, detail := range details {
		out[i] = teamDetailResponse(detail)
	}
	c.JSON(http.StatusOK, out)
}

// GetTeam returns one team in detail view.
func (h *Handlers) GetTeam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid team id"})
		return
	}

	detail, err := h.teams.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teamDetailResponse(detail))
}

// CreateTeam creates a single team. Budget defaults to 200 when omitted.
func (h *Handlers) CreateTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	teamBudget := models.DefaultBudget
	if req.Budget != nil {
		teamBudget = *req.Budget
	}

	team, err := h.teams.Create(c.Request.Context(), req.Name, teamBudget)
	if err != nil {
		respondError(c, err)
		return
	}
	// A freshly created team has no players: spent 0, full budget remaining.
	c.JSON(http.StatusOK, teamResponse(team, nil))
}

// InitializeTeams creates the 12 default league teams.
func (h *Handlers) InitializeTeams(c *gin.Context) {
	teams, err := h.teams.Initialize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]TeamResponse, len(teams))
	for i, team := range teams {
		out[i] = teamResponse(team, nil)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully initialized 12 teams",
		"teams":   out,
	})
}

// UpdateTeam renames and/or rebudgets one team.
func (h *Handlers) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid team id"})
		return
	}

	var req updateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	team, err := h.teams.Update(c.Request.Context(), id, req.Name, req.Budget)
	if err != nil {
		respondError(c, err)
		return
	}

	// Summary view, but spent/remaining still reflect current players.
	detail, err := h.teams.Get(c.Request.Context(), team.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teamResponse(team, detail.Players))
}

// DeleteTeam removes one team, refused while it still has players.
func (h *Handlers) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid team id"})
		return
	}

	team, err := h.teams.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Team '%s' deleted", team.Name)})
}

// ClearTeams deletes every team after unassigning all players.
func (h *Handlers) ClearTeams(c *gin.Context) {
	if err := h.teams.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All teams cleared"})
}

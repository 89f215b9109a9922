package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPlayers returns every player on the board.
func (h *Handlers) ListPlayers(c *gin.Context) {
	players, err := h.players.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playerResponses(players))
}

// UploadPlayers ingests a CSV roster file from a multipart form.
func (h *Handlers) UploadPlayers(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing file upload"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read uploaded file"})
		return
	}
	defer src.Close()

	count, err := h.players.Upload(c.Request.Context(), file.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully uploaded %d players", count)})
}

// DraftPlayer runs the draft transaction for one player. Parameters come
// as query values: draft_price and drafted_by are required, team_id is
// optional and leaves the team association untouched when omitted.
func (h *Handlers) DraftPlayer(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid player id"})
		return
	}

	price, err := strconv.Atoi(c.Query("draft_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid or missing draft_price"})
		return
	}

	draftedBy := c.Query("drafted_by")
	if draftedBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing drafted_by"})
		return
	}

	var teamID *int64
	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid team_id"})
			return
		}
		teamID = &id
	}

	player, err := h.players.Draft(c.Request.Context(), playerID, price, draftedBy, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playerResponse(player))
}

// ClearPlayers removes every player from the board.
func (h *Handlers) ClearPlayers(c *gin.Context) {
	if err := h.players.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All players cleared"})
}

// Package handlers exposes the draft-board services over a JSON REST API.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draftops/draftboard/internal/service"
)

// Handlers holds the services the HTTP layer delegates to.
type Handlers struct {
	players *service.PlayerService
	teams   *service.TeamService
}

// New creates the handler set backed by the given services.
func New(players *service.PlayerService, teams *service.TeamService) *Handlers {
	return &Handlers{players: players, teams: teams}
}

// respondError maps service error kinds onto HTTP status codes and writes
// the error message as the response detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrBadInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

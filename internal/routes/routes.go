// Package routes wires the HTTP surface onto a gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/draftops/draftboard/internal/handlers"
)

// Setup registers every route on the engine.
func Setup(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Fantasy Football Draft Board API"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	players := api.Group("/players")
	{
		players.GET("", h.ListPlayers)
		players.POST("/upload", h.UploadPlayers)
		players.PATCH("/:id/draft", h.DraftPlayer)
		players.DELETE("", h.ClearPlayers)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", h.ListTeams)
		teams.GET("/:id", h.GetTeam)
		teams.POST("", h.CreateTeam)
		teams.POST("/initialize", h.InitializeTeams)
		teams.PATCH("/:id", h.UpdateTeam)
		teams.DELETE("/:id", h.DeleteTeam)
		teams.DELETE("", h.ClearTeams)
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ClubRoster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the greeting, health and /api routes on r.
func RegisterRoutes(r gin.IRouter, svcs *service.Services, db *gorm.DB, logger *logrus.Logger) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ClubRoster data"})
	})
	r.GET("/hello/:name", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome to ClubRoster %s", c.Param("name"))})
	})
	r.GET("/healthz", healthHandler(db, logger))

	api := r.Group("/api")

	players := NewPlayerHandler(svcs.Players, logger)
	api.POST("/players", players.CreatePlayer)
	api.GET("/players", players.ListPlayers)
	api.GET("/players/:id", players.GetPlayer)
	api.PATCH("/players/:id", players.UpdatePlayer)
	api.DELETE("/players/:id", players.DeletePlayer)
	api.GET("/players/:id/history", players.PlayerHistory)
	api.GET("/players/:id/totals", players.PlayerTotals)

	matches := NewMatchHandler(svcs.Matches, logger)
	api.POST("/matches", matches.CreateMatch)
	api.GET("/matches", matches.ListMatches)
	api.GET("/matches/summary", matches.MatchSummary)
	api.GET("/matches/:id", matches.GetMatch)
	api.GET("/matches/:id/statistics", matches.MatchStatistics)
	api.DELETE("/matches/:id", matches.DeleteMatch)

	stats := NewStatisticHandler(svcs.Statistics, logger)
	api.POST("/statistics", stats.CreateStatistic)
	api.GET("/statistics", stats.ListStatistics)
	api.GET("/statistics/:id", stats.GetStatistic)
	api.DELETE("/statistics/:id", stats.DeleteStatistic)
}

func healthHandler(db *gorm.DB, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logger.WithError(err).Error("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

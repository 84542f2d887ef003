package api

import (
	"net/http"

	"ClubRoster/internal/repository"
	"ClubRoster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatisticHandler per-match player line endpoints
type StatisticHandler struct {
	statisticService *service.StatisticService
	logger           *logrus.Logger
}

// NewStatisticHandler creates a StatisticHandler
func NewStatisticHandler(svc *service.StatisticService, logger *logrus.Logger) *StatisticHandler {
	return &StatisticHandler{statisticService: svc, logger: logger}
}

// CreateStatistic POST /api/statistics
// A red card or two yellows suspend the player.
func (h *StatisticHandler) CreateStatistic(c *gin.Context) {
	var req service.StatisticCreate
	if !bindJSON(c, h.logger, "CreateStatistic", &req) {
		return
	}
	st, err := h.statisticService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "CreateStatistic", err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListStatistics GET /api/statistics?player_id=1&match_id=2
func (h *StatisticHandler) ListStatistics(c *gin.Context) {
	playerID, ok := queryID(c, "player_id")
	if !ok {
		return
	}
	matchID, ok := queryID(c, "match_id")
	if !ok {
		return
	}
	filter := repository.StatisticFilter{PlayerID: playerID, MatchID: matchID}
	list, err := h.statisticService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "ListStatistics", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetStatistic GET /api/statistics/:id
func (h *StatisticHandler) GetStatistic(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	st, err := h.statisticService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "GetStatistic", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStatistic DELETE /api/statistics/:id
func (h *StatisticHandler) DeleteStatistic(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.statisticService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteStatistic", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "statistic deleted"})
}

package api

import (
	"net/http"

	"ClubRoster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PlayerHandler roster endpoints
type PlayerHandler struct {
	playerService *service.PlayerService
	logger        *logrus.Logger
}

// NewPlayerHandler creates a PlayerHandler
func NewPlayerHandler(svc *service.PlayerService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{playerService: svc, logger: logger}
}

// CreatePlayer POST /api/players
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.PlayerCreate
	if !bindJSON(c, h.logger, "CreatePlayer", &req) {
		return
	}
	p, err := h.playerService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "CreatePlayer", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPlayers GET /api/players?status=ACTIVE
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	list, err := h.playerService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.logger, "ListPlayers", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPlayer GET /api/players/:id
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.playerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "GetPlayer", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePlayer PATCH /api/players/:id, any subset of fields
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.PlayerUpdate
	if !bindJSON(c, h.logger, "UpdatePlayer", &req) {
		return
	}
	p, err := h.playerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "UpdatePlayer", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePlayer DELETE /api/players/:id marks the player inactive
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.playerService.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeletePlayer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "player marked inactive"})
}

// PlayerHistory GET /api/players/:id/history
func (h *PlayerHandler) PlayerHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	history, err := h.playerService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "PlayerHistory", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// PlayerTotals GET /api/players/:id/totals
func (h *PlayerHandler) PlayerTotals(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	totals, err := h.playerService.Totals(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "PlayerTotals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player_id": id, "totals": totals})
}

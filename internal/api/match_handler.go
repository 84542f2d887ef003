package api

import (
	"net/http"

	"ClubRoster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MatchHandler fixture endpoints
type MatchHandler struct {
	matchService *service.MatchService
	logger       *logrus.Logger
}

// NewMatchHandler creates a MatchHandler
func NewMatchHandler(svc *service.MatchService, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{matchService: svc, logger: logger}
}

// CreateMatch POST /api/matches; the result is computed from the score
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.MatchCreate
	if !bindJSON(c, h.logger, "CreateMatch", &req) {
		return
	}
	m, err := h.matchService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "CreateMatch", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMatches GET /api/matches?result=WIN
func (h *MatchHandler) ListMatches(c *gin.Context) {
	list, err := h.matchService.List(c.Request.Context(), c.Query("result"))
	if err != nil {
		respondError(c, h.logger, "ListMatches", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// MatchSummary GET /api/matches/summary
func (h *MatchHandler) MatchSummary(c *gin.Context) {
	record, err := h.matchService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "MatchSummary", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetMatch GET /api/matches/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.matchService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "GetMatch", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// MatchStatistics GET /api/matches/:id/statistics
func (h *MatchHandler) MatchStatistics(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.matchService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "MatchStatistics", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteMatch DELETE /api/matches/:id
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.matchService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteMatch", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "match deleted"})
}

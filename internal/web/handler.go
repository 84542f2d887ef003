package web

import (
	"fmt"
	"net/http"
	"strconv"

	"ClubRoster/internal/api"
	"ClubRoster/internal/model"
	"ClubRoster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves the HTML pages and their form submissions.
type Handler struct {
	svcs   *service.Services
	logger *logrus.Logger
}

// NewHandler creates a Handler
func NewHandler(svcs *service.Services, logger *logrus.Logger) *Handler {
	return &Handler{svcs: svcs, logger: logger}
}

// RegisterRoutes installs the page templates on r and mounts the HTML routes.
func RegisterRoutes(r *gin.Engine, svcs *service.Services, logger *logrus.Logger) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	h := NewHandler(svcs, logger)
	players := r.Group("/players/html")
	players.GET("/list", h.PlayerList)
	players.GET("/detail/:id", h.PlayerDetail)
	players.GET("/create", h.PlayerCreateForm)
	players.POST("/create", h.PlayerCreateSubmit)
	players.GET("/edit/:id", h.PlayerEditForm)
	players.POST("/edit/:id", h.PlayerEditSubmit)

	matches := r.Group("/matches/html")
	matches.GET("/list", h.MatchList)
	matches.GET("/detail/:id", h.MatchDetail)
	matches.GET("/create", h.MatchCreateForm)
	matches.POST("/create", h.MatchCreateSubmit)

	stats := r.Group("/statistics/html")
	stats.GET("/create", h.StatisticCreateForm)
	stats.POST("/create", h.StatisticCreateSubmit)
	stats.GET("/player/:id", h.PlayerHistory)
	return nil
}

func (h *Handler) PlayerList(c *gin.Context) {
	list, err := h.svcs.Players.List(c.Request.Context(), "")
	if err != nil {
		h.errorPage(c, "PlayerList", err)
		return
	}
	c.HTML(http.StatusOK, "players_list", gin.H{"Title": "Players", "Players": list})
}

func (h *Handler) PlayerDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	history, err := h.svcs.Players.History(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, "PlayerDetail", err)
		return
	}
	c.HTML(http.StatusOK, "player_detail", gin.H{"Title": history.Player.FullName, "History": history})
}

func (h *Handler) PlayerCreateForm(c *gin.Context) {
	h.renderPlayerForm(c, http.StatusOK, service.PlayerCreate{}, nil)
}

// PlayerCreateSubmit redirects to the roster on success.
func (h *Handler) PlayerCreateSubmit(c *gin.Context) {
	var in service.PlayerCreate
	if err := c.ShouldBind(&in); err != nil {
		h.renderPlayerForm(c, http.StatusUnprocessableEntity, in, service.Validation("invalid form: %v", err))
		return
	}
	if _, err := h.svcs.Players.Create(c.Request.Context(), in); err != nil {
		h.renderPlayerForm(c, api.StatusOf(err), in, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/players/html/list")
}

func (h *Handler) renderPlayerForm(c *gin.Context, status int, form service.PlayerCreate, err error) {
	data := gin.H{
		"Title":     "New player",
		"Form":      form,
		"Feet":      model.Feet,
		"Positions": model.Positions,
	}
	if err != nil {
		h.logFormError(c, "PlayerCreateSubmit", err)
		data["Error"] = err.Error()
	}
	c.HTML(status, "player_form", data)
}

func (h *Handler) PlayerEditForm(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.svcs.Players.Get(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, "PlayerEditForm", err)
		return
	}
	h.renderEditForm(c, http.StatusOK, p, nil)
}

// PlayerEditSubmit updates name, jersey number and status, then redirects to
// the player card.
func (h *Handler) PlayerEditSubmit(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	var in service.PlayerUpdate
	err := c.ShouldBind(&in)
	if err == nil {
		_, err = h.svcs.Players.Update(ctx, id, in)
	} else {
		err = service.Validation("invalid form: %v", err)
	}
	if err == nil {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/players/html/detail/%d", id))
		return
	}

	p, getErr := h.svcs.Players.Get(ctx, id)
	if getErr != nil {
		h.errorPage(c, "PlayerEditSubmit", getErr)
		return
	}
	// keep what the user typed
	if in.FullName != nil {
		p.FullName = *in.FullName
	}
	if in.JerseyNumber != nil {
		p.JerseyNumber = *in.JerseyNumber
	}
	if in.Status != nil {
		p.Status = model.PlayerStatus(*in.Status)
	}
	h.renderEditForm(c, api.StatusOf(err), p, err)
}

func (h *Handler) renderEditForm(c *gin.Context, status int, p *model.Player, err error) {
	data := gin.H{
		"Title":    "Edit " + p.FullName,
		"Player":   p,
		"Statuses": model.PlayerStatuses,
	}
	if err != nil {
		h.logFormError(c, "PlayerEditSubmit", err)
		data["Error"] = err.Error()
	}
	c.HTML(status, "player_edit", data)
}

// MatchList shows the fixtures and the season record.
func (h *Handler) MatchList(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.svcs.Matches.List(ctx, "")
	if err != nil {
		h.errorPage(c, "MatchList", err)
		return
	}
	record, err := h.svcs.Matches.Summary(ctx)
	if err != nil {
		h.errorPage(c, "MatchList", err)
		return
	}
	c.HTML(http.StatusOK, "matches_list", gin.H{"Title": "Matches", "Matches": list, "Record": record})
}

func (h *Handler) MatchDetail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	detail, err := h.svcs.Matches.Detail(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, "MatchDetail", err)
		return
	}
	c.HTML(http.StatusOK, "match_detail", gin.H{"Title": "vs " + detail.Match.Opponent, "Detail": detail})
}

func (h *Handler) MatchCreateForm(c *gin.Context) {
	home := true
	h.renderMatchForm(c, http.StatusOK, service.MatchCreate{IsHome: &home}, nil)
}

// MatchCreateSubmit redirects to the new match on success.
func (h *Handler) MatchCreateSubmit(c *gin.Context) {
	var in service.MatchCreate
	bindErr := c.ShouldBind(&in)
	// an unchecked box is not submitted at all
	home := c.PostForm("is_home") != ""
	in.IsHome = &home
	if bindErr != nil {
		h.renderMatchForm(c, http.StatusUnprocessableEntity, in, service.Validation("invalid form: %v", bindErr))
		return
	}
	m, err := h.svcs.Matches.Create(c.Request.Context(), in)
	if err != nil {
		h.renderMatchForm(c, api.StatusOf(err), in, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/matches/html/detail/%d", m.ID))
}

func (h *Handler) renderMatchForm(c *gin.Context, status int, form service.MatchCreate, err error) {
	data := gin.H{"Title": "New match", "Form": form}
	if err != nil {
		h.logFormError(c, "MatchCreateSubmit", err)
		data["Error"] = err.Error()
	}
	c.HTML(status, "match_form", data)
}

// StatisticCreateForm lists active players and all matches; ?match_id
// preselects a match.
func (h *Handler) StatisticCreateForm(c *gin.Context) {
	var form service.StatisticCreate
	if raw := c.Query("match_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.errorPage(c, "StatisticCreateForm", service.BadRequest("match_id must be a positive integer"))
			return
		}
		form.MatchID = id
	}
	h.renderStatisticForm(c, http.StatusOK, form, nil)
}

// StatisticCreateSubmit redirects to the match on success.
func (h *Handler) StatisticCreateSubmit(c *gin.Context) {
	var in service.StatisticCreate
	if err := c.ShouldBind(&in); err != nil {
		h.renderStatisticForm(c, http.StatusUnprocessableEntity, in, service.Validation("invalid form: %v", err))
		return
	}
	if _, err := h.svcs.Statistics.Create(c.Request.Context(), in); err != nil {
		h.renderStatisticForm(c, api.StatusOf(err), in, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/matches/html/detail/%d", in.MatchID))
}

func (h *Handler) renderStatisticForm(c *gin.Context, status int, form service.StatisticCreate, formErr error) {
	ctx := c.Request.Context()
	players, err := h.svcs.Players.List(ctx, string(model.StatusActive))
	if err != nil {
		h.errorPage(c, "StatisticCreateForm", err)
		return
	}
	matches, err := h.svcs.Matches.List(ctx, "")
	if err != nil {
		h.errorPage(c, "StatisticCreateForm", err)
		return
	}
	data := gin.H{
		"Title":   "Record statistic",
		"Form":    form,
		"Players": players,
		"Matches": matches,
	}
	if formErr != nil {
		h.logFormError(c, "StatisticCreateSubmit", formErr)
		data["Error"] = formErr.Error()
	}
	c.HTML(status, "statistic_form", data)
}

func (h *Handler) PlayerHistory(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	history, err := h.svcs.Players.History(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, "PlayerHistory", err)
		return
	}
	c.HTML(http.StatusOK, "player_history", gin.H{"Title": history.Player.FullName + " history", "History": history})
}

func (h *Handler) pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (h *Handler) errorPage(c *gin.Context, op string, err error) {
	status := api.StatusOf(err)
	entry := h.logger.WithError(err).WithField("op", op)
	if status >= http.StatusInternalServerError {
		entry.Error(op + " failed")
	} else {
		entry.Warn(op + " rejected")
	}
	c.String(status, err.Error())
}

func (h *Handler) logFormError(c *gin.Context, op string, err error) {
	h.logger.WithError(err).WithFields(logrus.Fields{"op": op, "path": c.Request.URL.Path}).Warn("form rejected")
}


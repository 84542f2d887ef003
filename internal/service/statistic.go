package service

import (
	"context"

	"ClubRoster/internal/cache"
	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/rules"

	"github.com/sirupsen/logrus"
)

const (
	statisticNotFound  = "statistic not found"
	statisticDuplicate = "a statistic already exists for this player in this match"
)

// StatisticCreate one player's line for one match
type StatisticCreate struct {
	PlayerID      uint64 `json:"player_id" form:"player_id" validate:"required"`
	MatchID       uint64 `json:"match_id" form:"match_id" validate:"required"`
	MinutesPlayed int    `json:"minutes_played" form:"minutes_played" validate:"gte=0,lte=120"`
	Goals         int    `json:"goals" form:"goals" validate:"gte=0"`
	Assists       int    `json:"assists" form:"assists" validate:"gte=0"`
	Interceptions int    `json:"interceptions" form:"interceptions" validate:"gte=0"`
	Recoveries    int    `json:"recoveries" form:"recoveries" validate:"gte=0"`
	YellowCards   int    `json:"yellow_cards" form:"yellow_cards" validate:"gte=0,lte=2"`
	RedCards      int    `json:"red_cards" form:"red_cards" validate:"gte=0,lte=1"`
	Fouls         int    `json:"fouls" form:"fouls" validate:"gte=0"`
}

// StatisticService per-match player lines
type StatisticService struct {
	repo    repository.StatisticRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	cache   cache.StatsCache
	logger  *logrus.Logger
}

// NewStatisticService creates a StatisticService; a nil cache disables caching
func NewStatisticService(repo repository.StatisticRepository, players repository.PlayerRepository, matches repository.MatchRepository, c cache.StatsCache, logger *logrus.Logger) *StatisticService {
	if c == nil {
		c = cache.NoopStatsCache{}
	}
	return &StatisticService{repo: repo, players: players, matches: matches, cache: c, logger: logger}
}

// Create records a line. Player and match must exist and the pair must be new;
// a red card or a second yellow suspends the player in the same transaction.
func (s *StatisticService) Create(ctx context.Context, in StatisticCreate) (*model.Statistic, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.players.GetByID(ctx, in.PlayerID); err != nil {
		return nil, storeError("error creating statistic", err, playerNotFound, "")
	}
	if _, err := s.matches.GetByID(ctx, in.MatchID); err != nil {
		return nil, storeError("error creating statistic", err, matchNotFound, "")
	}
	exists, err := s.repo.Exists(ctx, in.PlayerID, in.MatchID)
	if err != nil {
		return nil, Internal("error creating statistic", err)
	}
	if exists {
		return nil, Conflict(statisticDuplicate)
	}

	stat := &model.Statistic{
		PlayerID:      in.PlayerID,
		MatchID:       in.MatchID,
		MinutesPlayed: in.MinutesPlayed,
		Goals:         in.Goals,
		Assists:       in.Assists,
		Interceptions: in.Interceptions,
		Recoveries:    in.Recoveries,
		YellowCards:   in.YellowCards,
		RedCards:      in.RedCards,
		Fouls:         in.Fouls,
	}
	suspend := rules.ShouldSuspend(in.YellowCards, in.RedCards)
	if err := s.repo.Create(ctx, stat, suspend); err != nil {
		return nil, storeError("error creating statistic", err, playerNotFound, statisticDuplicate)
	}
	if err := s.cache.InvalidatePlayers(ctx, in.PlayerID); err != nil {
		s.logger.WithError(err).Warn("totals cache invalidation failed")
	}

	entry := s.logger.WithFields(logrus.Fields{
		"statistic_id": stat.ID,
		"player_id":    stat.PlayerID,
		"match_id":     stat.MatchID,
	})
	if suspend {
		entry.Info("statistic created, player suspended")
	} else {
		entry.Info("statistic created")
	}
	return stat, nil
}

// List returns statistics filtered by player and/or match.
func (s *StatisticService) List(ctx context.Context, filter repository.StatisticFilter) ([]model.Statistic, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, Internal("error listing statistics", err)
	}
	return list, nil
}

func (s *StatisticService) Get(ctx context.Context, id uint64) (*model.Statistic, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("error loading statistic", err, statisticNotFound, "")
	}
	return st, nil
}

// Delete removes a line. A suspension it caused is not lifted.
func (s *StatisticService) Delete(ctx context.Context, id uint64) error {
	st, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("error deleting statistic", err, statisticNotFound, "")
	}
	if err := s.cache.InvalidatePlayers(ctx, st.PlayerID); err != nil {
		s.logger.WithError(err).Warn("totals cache invalidation failed")
	}
	s.logger.WithField("statistic_id", id).Info("statistic deleted")
	return nil
}

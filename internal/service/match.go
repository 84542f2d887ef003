package service

import (
	"context"

	"ClubRoster/internal/cache"
	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/rules"

	"github.com/sirupsen/logrus"
)

const matchNotFound = "match not found"

// MatchCreate input for a played fixture; the result is derived, never supplied
type MatchCreate struct {
	Opponent     string  `json:"opponent" form:"opponent" validate:"required,min=3,max=100"`
	MatchDate    string  `json:"match_date" form:"match_date" validate:"required,datetime=2006-01-02"`
	GoalsFor     int     `json:"goals_for" form:"goals_for" validate:"gte=0"`
	GoalsAgainst int     `json:"goals_against" form:"goals_against" validate:"gte=0"`
	IsHome       *bool   `json:"is_home" form:"is_home"`
	Venue        *string `json:"venue" form:"venue" validate:"omitempty,max=200"`
	Notes        *string `json:"notes" form:"notes" validate:"omitempty,max=500"`
}

// MatchDetail a match with its player lines and their totals
type MatchDetail struct {
	Match      *model.Match      `json:"match"`
	Statistics []model.Statistic `json:"statistics"`
	Totals     rules.Totals      `json:"totals"`
}

// MatchService fixture operations
type MatchService struct {
	repo   repository.MatchRepository
	stats  repository.StatisticRepository
	cache  cache.StatsCache
	logger *logrus.Logger
}

// NewMatchService creates a MatchService; a nil cache disables caching
func NewMatchService(repo repository.MatchRepository, stats repository.StatisticRepository, c cache.StatsCache, logger *logrus.Logger) *MatchService {
	if c == nil {
		c = cache.NoopStatsCache{}
	}
	return &MatchService{repo: repo, stats: stats, cache: c, logger: logger}
}

func (s *MatchService) Create(ctx context.Context, in MatchCreate) (*model.Match, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	date, err := parseDate(in.MatchDate)
	if err != nil {
		return nil, Validation("match_date must be a date formatted YYYY-MM-DD")
	}
	isHome := true
	if in.IsHome != nil {
		isHome = *in.IsHome
	}

	match := &model.Match{
		Opponent:     in.Opponent,
		MatchDate:    date,
		GoalsFor:     in.GoalsFor,
		GoalsAgainst: in.GoalsAgainst,
		IsHome:       isHome,
		Result:       rules.CalculateResult(in.GoalsFor, in.GoalsAgainst),
		Venue:        emptyToNil(in.Venue),
		Notes:        emptyToNil(in.Notes),
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, Internal("error creating match", err)
	}
	s.logger.WithFields(logrus.Fields{
		"match_id": match.ID,
		"opponent": match.Opponent,
		"result":   match.Result,
	}).Info("match created")
	return match, nil
}

// List returns matches newest first, optionally filtered by result.
func (s *MatchService) List(ctx context.Context, result string) ([]model.Match, error) {
	if result != "" && !model.ValidResult(result) {
		return nil, BadRequest("unknown match result %q", result)
	}
	list, err := s.repo.List(ctx, repository.MatchFilter{Result: result})
	if err != nil {
		return nil, Internal("error listing matches", err)
	}
	return list, nil
}

func (s *MatchService) Get(ctx context.Context, id uint64) (*model.Match, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("error loading match", err, matchNotFound, "")
	}
	return m, nil
}

// Detail loads the match with its lines ordered by jersey number.
func (s *MatchService) Detail(ctx context.Context, id uint64) (*MatchDetail, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByMatch(ctx, id)
	if err != nil {
		return nil, Internal("error loading match statistics", err)
	}
	return &MatchDetail{Match: m, Statistics: stats, Totals: rules.Aggregate(stats)}, nil
}

// Summary is the season record over every stored match.
func (s *MatchService) Summary(ctx context.Context) (rules.Record, error) {
	list, err := s.repo.List(ctx, repository.MatchFilter{})
	if err != nil {
		return rules.Record{}, Internal("error listing matches", err)
	}
	return rules.SeasonRecord(list), nil
}

// Delete removes the match together with its statistics.
func (s *MatchService) Delete(ctx context.Context, id uint64) error {
	playerIDs, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError("error deleting match", err, matchNotFound, "")
	}
	if err := s.cache.InvalidatePlayers(ctx, playerIDs...); err != nil {
		s.logger.WithError(err).Warn("totals cache invalidation failed")
	}
	s.logger.WithFields(logrus.Fields{"match_id": id, "statistics_removed": len(playerIDs)}).Info("match deleted")
	return nil
}

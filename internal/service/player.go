package service

import (
	"context"
	"time"

	"ClubRoster/internal/cache"
	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/rules"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const playerNotFound = "player not found"

// PlayerCreate input for a new roster entry
type PlayerCreate struct {
	FullName     string  `json:"full_name" form:"full_name" validate:"required,min=3,max=100"`
	JerseyNumber int     `json:"jersey_number" form:"jersey_number" validate:"gte=1,lte=99"`
	BirthDate    string  `json:"birth_date" form:"birth_date" validate:"required,datetime=2006-01-02"`
	Nationality  string  `json:"nationality" form:"nationality" validate:"required,min=2,max=50"`
	PhotoURL     *string `json:"photo_url" form:"photo_url" validate:"omitempty,max=500"`
	HeightCm     int     `json:"height_cm" form:"height_cm" validate:"gte=150,lte=220"`
	WeightKg     float64 `json:"weight_kg" form:"weight_kg" validate:"gte=50,lte=120"`
	DominantFoot string  `json:"dominant_foot" form:"dominant_foot" validate:"required,oneof=RIGHT LEFT AMBIDEXTROUS"`
	Position     string  `json:"position" form:"position" validate:"required,oneof=GOALKEEPER CENTER_BACK FULL_BACK DEFENSIVE_MIDFIELDER ATTACKING_MIDFIELDER CENTRAL_MIDFIELDER WINGER CENTER_FORWARD STRIKER"`
	MarketValue  float64 `json:"market_value" form:"market_value" validate:"gte=0"`
	JoinYear     int     `json:"join_year" form:"join_year" validate:"gte=1900,lte=2100"`
	Status       string  `json:"status" form:"status" validate:"omitempty,oneof=ACTIVE INACTIVE INJURED SUSPENDED"`
}

// PlayerUpdate partial update; nil fields are left untouched
type PlayerUpdate struct {
	FullName     *string  `json:"full_name" form:"full_name" validate:"omitempty,min=3,max=100"`
	JerseyNumber *int     `json:"jersey_number" form:"jersey_number" validate:"omitempty,gte=1,lte=99"`
	BirthDate    *string  `json:"birth_date" form:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Nationality  *string  `json:"nationality" form:"nationality" validate:"omitempty,min=2,max=50"`
	PhotoURL     *string  `json:"photo_url" form:"photo_url" validate:"omitempty,max=500"`
	HeightCm     *int     `json:"height_cm" form:"height_cm" validate:"omitempty,gte=150,lte=220"`
	WeightKg     *float64 `json:"weight_kg" form:"weight_kg" validate:"omitempty,gte=50,lte=120"`
	DominantFoot *string  `json:"dominant_foot" form:"dominant_foot" validate:"omitempty,oneof=RIGHT LEFT AMBIDEXTROUS"`
	Position     *string  `json:"position" form:"position" validate:"omitempty,oneof=GOALKEEPER CENTER_BACK FULL_BACK DEFENSIVE_MIDFIELDER ATTACKING_MIDFIELDER CENTRAL_MIDFIELDER WINGER CENTER_FORWARD STRIKER"`
	MarketValue  *float64 `json:"market_value" form:"market_value" validate:"omitempty,gte=0"`
	JoinYear     *int     `json:"join_year" form:"join_year" validate:"omitempty,gte=1900,lte=2100"`
	Status       *string  `json:"status" form:"status" validate:"omitempty,oneof=ACTIVE INACTIVE INJURED SUSPENDED"`
}

// PlayerHistory a player's match lines, newest first, with totals
type PlayerHistory struct {
	Player     *model.Player     `json:"player"`
	Statistics []model.Statistic `json:"statistics"`
	Totals     rules.Totals      `json:"totals"`
}

// PlayerService roster operations
type PlayerService struct {
	repo   repository.PlayerRepository
	stats  repository.StatisticRepository
	cache  cache.StatsCache
	logger *logrus.Logger
}

// NewPlayerService creates a PlayerService; a nil cache disables caching
func NewPlayerService(repo repository.PlayerRepository, stats repository.StatisticRepository, c cache.StatsCache, logger *logrus.Logger) *PlayerService {
	if c == nil {
		c = cache.NoopStatsCache{}
	}
	return &PlayerService{repo: repo, stats: stats, cache: c, logger: logger}
}

// Create registers a player; the jersey number must be free.
func (s *PlayerService) Create(ctx context.Context, in PlayerCreate) (*model.Player, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	birth, err := parseDate(in.BirthDate)
	if err != nil {
		return nil, Validation("birth_date must be a date formatted YYYY-MM-DD")
	}

	taken, err := s.repo.JerseyNumberTaken(ctx, in.JerseyNumber, 0)
	if err != nil {
		return nil, Internal("error creating player", err)
	}
	if taken {
		return nil, jerseyConflict(in.JerseyNumber)
	}

	status := model.StatusActive
	if in.Status != "" {
		status = model.PlayerStatus(in.Status)
	}
	player := &model.Player{
		FullName:     in.FullName,
		JerseyNumber: in.JerseyNumber,
		BirthDate:    birth,
		Nationality:  in.Nationality,
		PhotoURL:     emptyToNil(in.PhotoURL),
		HeightCm:     in.HeightCm,
		WeightKg:     in.WeightKg,
		DominantFoot: model.Foot(in.DominantFoot),
		Position:     model.Position(in.Position),
		MarketValue:  in.MarketValue,
		JoinYear:     in.JoinYear,
		Status:       status,
	}
	if err := s.repo.Create(ctx, player); err != nil {
		return nil, storeError("error creating player", err, "", jerseyConflict(in.JerseyNumber).Error())
	}
	s.logger.WithFields(logrus.Fields{"player_id": player.ID, "jersey_number": player.JerseyNumber}).Info("player created")
	return player, nil
}

// List returns the roster, optionally filtered by status.
func (s *PlayerService) List(ctx context.Context, status string) ([]model.Player, error) {
	if status != "" && !model.ValidPlayerStatus(status) {
		return nil, BadRequest("unknown player status %q", status)
	}
	list, err := s.repo.List(ctx, repository.PlayerFilter{Status: status})
	if err != nil {
		return nil, Internal("error listing players", err)
	}
	return list, nil
}

func (s *PlayerService) Get(ctx context.Context, id uint64) (*model.Player, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("error loading player", err, playerNotFound, "")
	}
	return p, nil
}

// Update applies the non-nil fields of in and stamps updated_at.
func (s *PlayerService) Update(ctx context.Context, id uint64, in PlayerUpdate) (*model.Player, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.JerseyNumber != nil {
		taken, err := s.repo.JerseyNumberTaken(ctx, *in.JerseyNumber, id)
		if err != nil {
			return nil, Internal("error updating player", err)
		}
		if taken {
			return nil, jerseyConflict(*in.JerseyNumber)
		}
		fields["jersey_number"] = *in.JerseyNumber
	}
	if in.BirthDate != nil {
		birth, err := parseDate(*in.BirthDate)
		if err != nil {
			return nil, Validation("birth_date must be a date formatted YYYY-MM-DD")
		}
		fields["birth_date"] = birth
	}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}
	if in.Nationality != nil {
		fields["nationality"] = *in.Nationality
	}
	if in.PhotoURL != nil {
		fields["photo_url"] = emptyToNil(in.PhotoURL)
	}
	if in.HeightCm != nil {
		fields["height_cm"] = *in.HeightCm
	}
	if in.WeightKg != nil {
		fields["weight_kg"] = *in.WeightKg
	}
	if in.DominantFoot != nil {
		fields["dominant_foot"] = *in.DominantFoot
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.MarketValue != nil {
		fields["market_value"] = *in.MarketValue
	}
	if in.JoinYear != nil {
		fields["join_year"] = *in.JoinYear
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.Updates(ctx, id, fields); err != nil {
		conflict := ""
		if in.JerseyNumber != nil {
			conflict = jerseyConflict(*in.JerseyNumber).Error()
		}
		return nil, storeError("error updating player", err, playerNotFound, conflict)
	}
	return s.Get(ctx, id)
}

// Deactivate is the soft delete: the player stays on file as INACTIVE.
func (s *PlayerService) Deactivate(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, model.StatusInactive); err != nil {
		return storeError("error deleting player", err, playerNotFound, "")
	}
	s.logger.WithField("player_id", id).Info("player marked inactive")
	return nil
}

// History returns the player's lines, newest match first, and their totals.
func (s *PlayerService) History(ctx context.Context, id uint64) (*PlayerHistory, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByPlayer(ctx, id)
	if err != nil {
		return nil, Internal("error loading player statistics", err)
	}
	return &PlayerHistory{Player: p, Statistics: stats, Totals: rules.Aggregate(stats)}, nil
}

// Totals returns the player's aggregated totals, served from the cache when
// possible.
func (s *PlayerService) Totals(ctx context.Context, id uint64) (rules.Totals, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return rules.Totals{}, err
	}
	if t, ok, err := s.cache.GetPlayerTotals(ctx, id); err != nil {
		s.logger.WithError(err).WithField("player_id", id).Warn("totals cache read failed")
	} else if ok {
		return t, nil
	}

	// taken before the load so a concurrent invalidation voids the write-back
	gen, genErr := s.cache.Generation(ctx, id)
	if genErr != nil {
		s.logger.WithError(genErr).WithField("player_id", id).Warn("totals cache generation read failed")
	}

	stats, err := s.stats.List(ctx, repository.StatisticFilter{PlayerID: id})
	if err != nil {
		return rules.Totals{}, Internal("error loading player statistics", err)
	}
	t := rules.Aggregate(stats)
	if genErr != nil {
		return t, nil
	}
	stored, err := s.cache.SetPlayerTotals(ctx, id, gen, t)
	if err != nil {
		s.logger.WithError(err).WithField("player_id", id).Warn("totals cache write failed")
	} else if !stored {
		s.logger.WithField("player_id", id).Debug("totals changed during load, not cached")
	}
	return t, nil
}

func jerseyConflict(number int) error {
	return Conflict("jersey number %d is already in use", number)
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

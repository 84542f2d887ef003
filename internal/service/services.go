package service

import (
	"ClubRoster/internal/cache"
	"ClubRoster/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Services groups the services sharing one store and one totals cache.
// It is what the JSON and HTML layers are built from.
type Services struct {
	Players    *PlayerService
	Matches    *MatchService
	Statistics *StatisticService
}

// NewServices builds the repositories on db and the services on top of them.
// c may be nil.
func NewServices(db *gorm.DB, c cache.StatsCache, logger *logrus.Logger) *Services {
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	statRepo := repository.NewStatisticRepository(db)
	return &Services{
		Players:    NewPlayerService(playerRepo, statRepo, c, logger),
		Matches:    NewMatchService(matchRepo, statRepo, c, logger),
		Statistics: NewStatisticService(statRepo, playerRepo, matchRepo, c, logger),
	}
}

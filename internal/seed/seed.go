// Package seed loads a demo roster, a few fixtures and their statistics
// into an empty database.
package seed

import (
	"context"
	"fmt"

	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/service"

	"github.com/sirupsen/logrus"
)

var players = []service.PlayerCreate{
	{FullName: "Mateo Quintero", JerseyNumber: 1, BirthDate: "1995-03-15", Nationality: "Colombia", HeightCm: 188, WeightKg: 82, DominantFoot: "RIGHT", Position: "GOALKEEPER", MarketValue: 500000, JoinYear: 2020},
	{FullName: "Tomas Arango", JerseyNumber: 2, BirthDate: "1997-11-08", Nationality: "Colombia", HeightCm: 176, WeightKg: 71, DominantFoot: "LEFT", Position: "FULL_BACK", MarketValue: 600000, JoinYear: 2022},
	{FullName: "Bruno Salcedo", JerseyNumber: 4, BirthDate: "1998-07-22", Nationality: "Uruguay", HeightCm: 184, WeightKg: 79, DominantFoot: "RIGHT", Position: "CENTER_BACK", MarketValue: 800000, JoinYear: 2021},
	{FullName: "Ivan Rosales", JerseyNumber: 5, BirthDate: "1996-05-12", Nationality: "Argentina", HeightCm: 181, WeightKg: 76, DominantFoot: "RIGHT", Position: "DEFENSIVE_MIDFIELDER", MarketValue: 900000, JoinYear: 2021},
	{FullName: "Nicolas Beltran", JerseyNumber: 8, BirthDate: "1999-02-28", Nationality: "Colombia", HeightCm: 174, WeightKg: 69, DominantFoot: "AMBIDEXTROUS", Position: "CENTRAL_MIDFIELDER", MarketValue: 1000000, JoinYear: 2023},
	{FullName: "Emilio Cardenas", JerseyNumber: 10, BirthDate: "1997-09-05", Nationality: "Colombia", HeightCm: 175, WeightKg: 70, DominantFoot: "LEFT", Position: "ATTACKING_MIDFIELDER", MarketValue: 1500000, JoinYear: 2020},
	{FullName: "Samuel Ortega", JerseyNumber: 7, BirthDate: "1998-12-18", Nationality: "Ecuador", HeightCm: 171, WeightKg: 66, DominantFoot: "RIGHT", Position: "WINGER", MarketValue: 1200000, JoinYear: 2022, Status: "INJURED"},
	{FullName: "Diego Paredes", JerseyNumber: 9, BirthDate: "1996-04-30", Nationality: "Brazil", HeightCm: 183, WeightKg: 80, DominantFoot: "RIGHT", Position: "CENTER_FORWARD", MarketValue: 2000000, JoinYear: 2021},
	{FullName: "Andres Mejia", JerseyNumber: 11, BirthDate: "2000-01-14", Nationality: "Colombia", HeightCm: 178, WeightKg: 72, DominantFoot: "LEFT", Position: "STRIKER", MarketValue: 800000, JoinYear: 2023},
}

func ptr[T any](v T) *T { return &v }

var matches = []service.MatchCreate{
	{Opponent: "Deportivo Pereira", MatchDate: "2024-11-15", GoalsFor: 3, GoalsAgainst: 1, IsHome: ptr(true), Venue: ptr("Estadio Municipal")},
	{Opponent: "Once Caldas", MatchDate: "2024-11-22", GoalsFor: 2, GoalsAgainst: 2, IsHome: ptr(false), Venue: ptr("Palogrande")},
	{Opponent: "Independiente Medellin", MatchDate: "2024-11-29", GoalsFor: 1, GoalsAgainst: 2, IsHome: ptr(true), Venue: ptr("Estadio Municipal"), Notes: ptr("Late penalty conceded")},
}

// statistics reference players by jersey number and matches by index.
var statistics = []struct {
	jersey int
	match  int
	line   service.StatisticCreate
}{
	{1, 0, service.StatisticCreate{MinutesPlayed: 90, Recoveries: 3}},
	{9, 0, service.StatisticCreate{MinutesPlayed: 90, Goals: 2, Fouls: 1}},
	{10, 0, service.StatisticCreate{MinutesPlayed: 85, Goals: 1, Assists: 2, Recoveries: 4}},
	{5, 0, service.StatisticCreate{MinutesPlayed: 90, Interceptions: 6, Recoveries: 8, YellowCards: 1, Fouls: 3}},
	{1, 1, service.StatisticCreate{MinutesPlayed: 90, Recoveries: 2}},
	{9, 1, service.StatisticCreate{MinutesPlayed: 78, Goals: 1}},
	{11, 1, service.StatisticCreate{MinutesPlayed: 30, Goals: 1}},
	{4, 1, service.StatisticCreate{MinutesPlayed: 90, Interceptions: 4, YellowCards: 1, Fouls: 2}},
	{10, 2, service.StatisticCreate{MinutesPlayed: 90, Goals: 1, Assists: 0, Fouls: 1}},
	{8, 2, service.StatisticCreate{MinutesPlayed: 90, Assists: 1, Recoveries: 5}},
}

// Load fills an empty store through the services, so every rule applies to
// the demo data too. A store that already has players is left alone.
func Load(ctx context.Context, playerRepo repository.PlayerRepository, svcs *service.Services, logger *logrus.Logger) error {
	n, err := playerRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count players: %w", err)
	}
	if n > 0 {
		logger.WithField("players", n).Info("database already has data, skipping seed")
		return nil
	}

	byJersey := make(map[int]uint64, len(players))
	for _, in := range players {
		p, err := svcs.Players.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed player %d: %w", in.JerseyNumber, err)
		}
		byJersey[p.JerseyNumber] = p.ID
	}

	created := make([]*model.Match, 0, len(matches))
	for _, in := range matches {
		m, err := svcs.Matches.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed match vs %s: %w", in.Opponent, err)
		}
		created = append(created, m)
	}

	for _, s := range statistics {
		line := s.line
		line.PlayerID = byJersey[s.jersey]
		line.MatchID = created[s.match].ID
		if _, err := svcs.Statistics.Create(ctx, line); err != nil {
			return fmt.Errorf("seed statistic for #%d: %w", s.jersey, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"players":    len(players),
		"matches":    len(matches),
		"statistics": len(statistics),
	}).Info("demo data loaded")
	return nil
}

package rules_test

import (
	"testing"

	"ClubRoster/internal/model"
	"ClubRoster/internal/rules"

	"github.com/stretchr/testify/assert"
)

func TestCalculateResult(t *testing.T) {
	tests := []struct {
		name     string
		goalsFor int
		against  int
		want     model.Result
	}{
		{"win 3-1", 3, 1, model.ResultWin},
		{"draw 2-2", 2, 2, model.ResultDraw},
		{"loss 0-1", 0, 1, model.ResultLoss},
		{"goalless draw", 0, 0, model.ResultDraw},
		{"win 1-0", 1, 0, model.ResultWin},
		{"heavy loss", 1, 7, model.ResultLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.CalculateResult(tt.goalsFor, tt.against))
		})
	}
}

func TestCalculateResultExhaustive(t *testing.T) {
	for f := 0; f <= 10; f++ {
		for a := 0; a <= 10; a++ {
			got := rules.CalculateResult(f, a)
			switch {
			case f > a:
				assert.Equal(t, model.ResultWin, got, "%d-%d", f, a)
			case f < a:
				assert.Equal(t, model.ResultLoss, got, "%d-%d", f, a)
			default:
				assert.Equal(t, model.ResultDraw, got, "%d-%d", f, a)
			}
		}
	}
}

func TestShouldSuspend(t *testing.T) {
	tests := []struct {
		name   string
		yellow int
		red    int
		want   bool
	}{
		{"clean", 0, 0, false},
		{"one yellow", 1, 0, false},
		{"two yellows", 2, 0, true},
		{"straight red", 0, 1, true},
		{"yellow and red", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ShouldSuspend(tt.yellow, tt.red))
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, rules.Totals{}, rules.Aggregate(nil))
	assert.Equal(t, rules.Totals{}, rules.Aggregate([]model.Statistic{}))
}

func TestAggregate(t *testing.T) {
	stats := []model.Statistic{
		{MinutesPlayed: 90, Goals: 2, Assists: 1, YellowCards: 1, Interceptions: 3, Recoveries: 5, Fouls: 2},
		{MinutesPlayed: 45, Goals: 0, Assists: 2, RedCards: 1, Interceptions: 1, Recoveries: 2, Fouls: 1},
		{MinutesPlayed: 120, Goals: 1, YellowCards: 2},
	}

	got := rules.Aggregate(stats)

	assert.Equal(t, rules.Totals{
		MatchesPlayed: 3,
		Minutes:       255,
		Goals:         3,
		Assists:       3,
		YellowCards:   3,
		RedCards:      1,
		Interceptions: 4,
		Recoveries:    7,
		Fouls:         3,
	}, got)
}

func TestSeasonRecord(t *testing.T) {
	matches := []model.Match{
		{GoalsFor: 3, GoalsAgainst: 1},
		{GoalsFor: 2, GoalsAgainst: 2},
		{GoalsFor: 0, GoalsAgainst: 2},
		{GoalsFor: 1, GoalsAgainst: 0},
	}

	got := rules.SeasonRecord(matches)

	assert.Equal(t, rules.Record{
		Played:         4,
		Wins:           2,
		Draws:          1,
		Losses:         1,
		GoalsFor:       6,
		GoalsAgainst:   5,
		GoalDifference: 1,
	}, got)
	assert.Equal(t, rules.Record{}, rules.SeasonRecord(nil))
}

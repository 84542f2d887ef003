// Package rules holds the club's derived-value computations. Everything here
// is pure; persistence and side effects live in the service layer.
package rules

import "ClubRoster/internal/model"

// CalculateResult derives the match outcome from the club's goals and the
// opponent's goals.
func CalculateResult(goalsFor, goalsAgainst int) model.Result {
	switch {
	case goalsFor > goalsAgainst:
		return model.ResultWin
	case goalsFor < goalsAgainst:
		return model.ResultLoss
	default:
		return model.ResultDraw
	}
}

// ShouldSuspend reports whether a match line with these cards suspends the
// player: any red card, or two yellows.
func ShouldSuspend(yellowCards, redCards int) bool {
	return redCards > 0 || yellowCards >= 2
}

// Totals is the sum of a set of statistic lines.
type Totals struct {
	MatchesPlayed int `json:"matches_played"`
	Minutes       int `json:"minutes"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	Interceptions int `json:"interceptions"`
	Recoveries    int `json:"recoveries"`
	Fouls         int `json:"fouls"`
}

// Aggregate sums stats; it works for one player's history or one match's
// lines alike.
func Aggregate(stats []model.Statistic) Totals {
	t := Totals{MatchesPlayed: len(stats)}
	for _, s := range stats {
		t.Minutes += s.MinutesPlayed
		t.Goals += s.Goals
		t.Assists += s.Assists
		t.YellowCards += s.YellowCards
		t.RedCards += s.RedCards
		t.Interceptions += s.Interceptions
		t.Recoveries += s.Recoveries
		t.Fouls += s.Fouls
	}
	return t
}

// Record is the season summary over a set of matches.
type Record struct {
	Played         int `json:"played"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
}

// SeasonRecord counts results and goals. The stored result is recomputed
// from the score so a stale row cannot skew the counts.
func SeasonRecord(matches []model.Match) Record {
	r := Record{Played: len(matches)}
	for _, m := range matches {
		switch CalculateResult(m.GoalsFor, m.GoalsAgainst) {
		case model.ResultWin:
			r.Wins++
		case model.ResultDraw:
			r.Draws++
		case model.ResultLoss:
			r.Losses++
		}
		r.GoalsFor += m.GoalsFor
		r.GoalsAgainst += m.GoalsAgainst
	}
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	return r
}

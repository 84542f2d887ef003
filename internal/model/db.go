package model

import (
	"time"

	"gorm.io/datatypes"
)

type Player struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName     string         `gorm:"column:full_name;type:varchar(100);index;not null" json:"full_name"`
	JerseyNumber int            `gorm:"column:jersey_number;uniqueIndex:uk_players_jersey;not null" json:"jersey_number"`
	BirthDate    datatypes.Date `gorm:"column:birth_date;not null" json:"birth_date"`
	Nationality  string         `gorm:"column:nationality;type:varchar(50);not null" json:"nationality"`
	PhotoURL     *string        `gorm:"column:photo_url;type:varchar(500)" json:"photo_url"`
	HeightCm     int            `gorm:"column:height_cm;not null" json:"height_cm"`
	WeightKg     float64        `gorm:"column:weight_kg;not null" json:"weight_kg"`
	DominantFoot Foot           `gorm:"column:dominant_foot;type:varchar(16);not null" json:"dominant_foot"`
	Position     Position       `gorm:"column:position;type:varchar(32);not null" json:"position"`
	MarketValue  float64        `gorm:"column:market_value;default:0" json:"market_value"`
	JoinYear     int            `gorm:"column:join_year;not null" json:"join_year"`
	Status       PlayerStatus   `gorm:"column:status;type:varchar(16);default:'ACTIVE';index" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    *time.Time     `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

type Match struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Opponent     string         `gorm:"column:opponent;type:varchar(100);not null" json:"opponent"`
	MatchDate    datatypes.Date `gorm:"column:match_date;index;not null" json:"match_date"`
	GoalsFor     int            `gorm:"column:goals_for;not null" json:"goals_for"`
	GoalsAgainst int            `gorm:"column:goals_against;not null" json:"goals_against"`
	IsHome       bool           `gorm:"column:is_home;not null" json:"is_home"`
	Result       Result         `gorm:"column:result;type:varchar(8);not null;index" json:"result"`
	Venue        *string        `gorm:"column:venue;type:varchar(200)" json:"venue"`
	Notes        *string        `gorm:"column:notes;type:varchar(500)" json:"notes"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Statistic one player's line for one match; (player_id, match_id) is unique
type Statistic struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PlayerID      uint64    `gorm:"column:player_id;not null;index;uniqueIndex:uk_statistics_player_match" json:"player_id"`
	MatchID       uint64    `gorm:"column:match_id;not null;index;uniqueIndex:uk_statistics_player_match" json:"match_id"`
	MinutesPlayed int       `gorm:"column:minutes_played;not null" json:"minutes_played"`
	Goals         int       `gorm:"column:goals;default:0" json:"goals"`
	Assists       int       `gorm:"column:assists;default:0" json:"assists"`
	Interceptions int       `gorm:"column:interceptions;default:0" json:"interceptions"`
	Recoveries    int       `gorm:"column:recoveries;default:0" json:"recoveries"`
	YellowCards   int       `gorm:"column:yellow_cards;default:0" json:"yellow_cards"`
	RedCards      int       `gorm:"column:red_cards;default:0" json:"red_cards"`
	Fouls         int       `gorm:"column:fouls;default:0" json:"fouls"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Player *Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"player,omitempty"`
	Match  *Match  `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"match,omitempty"`
}

func (Player) TableName() string    { return "players" }
func (Match) TableName() string     { return "matches" }
func (Statistic) TableName() string { return "statistics" }

// DateString formats a datatypes.Date as YYYY-MM-DD.
func DateString(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}

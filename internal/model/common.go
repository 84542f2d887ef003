package model

// Position player position on the pitch
type Position string

const (
	PositionGoalkeeper          Position = "GOALKEEPER"
	PositionCenterBack          Position = "CENTER_BACK"
	PositionFullBack            Position = "FULL_BACK"
	PositionDefensiveMidfielder Position = "DEFENSIVE_MIDFIELDER"
	PositionAttackingMidfielder Position = "ATTACKING_MIDFIELDER"
	PositionCentralMidfielder   Position = "CENTRAL_MIDFIELDER"
	PositionWinger              Position = "WINGER"
	PositionCenterForward       Position = "CENTER_FORWARD"
	PositionStriker             Position = "STRIKER"
)

// Positions in roster order
var Positions = []Position{
	PositionGoalkeeper,
	PositionCenterBack,
	PositionFullBack,
	PositionDefensiveMidfielder,
	PositionAttackingMidfielder,
	PositionCentralMidfielder,
	PositionWinger,
	PositionCenterForward,
	PositionStriker,
}

// PlayerStatus roster status
type PlayerStatus string

const (
	StatusActive    PlayerStatus = "ACTIVE"
	StatusInactive  PlayerStatus = "INACTIVE"
	StatusInjured   PlayerStatus = "INJURED"
	StatusSuspended PlayerStatus = "SUSPENDED"
)

var PlayerStatuses = []PlayerStatus{StatusActive, StatusInactive, StatusInjured, StatusSuspended}

// Foot dominant foot
type Foot string

const (
	FootRight        Foot = "RIGHT"
	FootLeft         Foot = "LEFT"
	FootAmbidextrous Foot = "AMBIDEXTROUS"
)

var Feet = []Foot{FootRight, FootLeft, FootAmbidextrous}

// Result match outcome from the club's point of view
type Result string

const (
	ResultWin  Result = "WIN"
	ResultDraw Result = "DRAW"
	ResultLoss Result = "LOSS"
)

var Results = []Result{ResultWin, ResultDraw, ResultLoss}

// ValidPlayerStatus reports whether s is a known status.
func ValidPlayerStatus(s string) bool {
	for _, v := range PlayerStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ValidResult reports whether r is a known result.
func ValidResult(r string) bool {
	for _, v := range Results {
		if string(v) == r {
			return true
		}
	}
	return false
}

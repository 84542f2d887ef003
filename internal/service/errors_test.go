package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
		msg  string
	}{
		{"missing row", gorm.ErrRecordNotFound, KindNotFound, "player not found"},
		{"duplicate key", gorm.ErrDuplicatedKey, KindConflict, "taken"},
		{"other", errors.New("disk full"), KindInternal, "error saving: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError("error saving", tt.err, "player not found", "taken")
			assert.Equal(t, tt.want, KindOf(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}

	// no conflict message means the duplicate is unexpected here
	assert.Equal(t, KindInternal, KindOf(storeError("op", gorm.ErrDuplicatedKey, "x", "")))
}

// Inserts that bypass the service pre-checks still surface as conflicts.
func TestStoreErrorFromUniqueIndexes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	players := repository.NewPlayerRepository(db)
	matches := repository.NewMatchRepository(db)
	stats := repository.NewStatisticRepository(db)

	player := func() *model.Player {
		return &model.Player{
			FullName: "Felipe Rios", JerseyNumber: 21, Nationality: "Chile",
			BirthDate: datatypes.Date(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)),
			HeightCm:  179, WeightKg: 74, DominantFoot: model.FootLeft,
			Position: model.PositionFullBack, JoinYear: 2023, Status: model.StatusActive,
		}
	}
	p := player()
	require.NoError(t, players.Create(ctx, p))
	err := storeError("error creating player", players.Create(ctx, player()), "", jerseyConflict(21).Error())
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "jersey number 21 is already in use", err.Error())

	m := &model.Match{Opponent: "Tolima", MatchDate: datatypes.Date(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)), Result: model.ResultDraw}
	require.NoError(t, matches.Create(ctx, m))
	require.NoError(t, stats.Create(ctx, &model.Statistic{PlayerID: p.ID, MatchID: m.ID}, false))
	err = storeError("error creating statistic",
		stats.Create(ctx, &model.Statistic{PlayerID: p.ID, MatchID: m.ID, RedCards: 1}, true),
		playerNotFound, statisticDuplicate)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, statisticDuplicate, err.Error())
}
